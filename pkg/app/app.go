// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：读取调参配置、创建资源管理器、
// 构建 World 和场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/game"
	"github.com/gonewx/kokaton/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和画面调试信息
	Verbose bool
	// Tuning 调参配置，为 nil 时使用默认值
	Tuning *config.TuningConfig
	// Assets 图像所在的文件系统，按 "<name>.png" 查找
	Assets fs.FS
	// TPS 覆盖配置中的帧率，0 表示使用配置值
	TPS int
	// Strict 契约违反时 panic（调试用）
	Strict bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	world        *game.World
	tps          int
}

// NewApp 创建并初始化游戏应用
//
// 任何资源解析失败都会在这里返回错误，调用方应直接终止进程。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Assets == nil {
		return nil, fmt.Errorf("assets file system is required")
	}

	tuning := cfg.Tuning
	if tuning == nil {
		tuning = config.DefaultTuningConfig()
	}
	if cfg.TPS > 0 {
		tuning.Loop.TPS = cfg.TPS
	}
	if cfg.Strict {
		tuning.Debug.Strict = true
	}

	keyMap, err := scenes.ParseKeyMap(tuning.Keys)
	if err != nil {
		return nil, fmt.Errorf("按键配置无效: %w", err)
	}

	resourceManager := scenes.NewResourceManager(cfg.Assets)

	world, err := game.NewWorld(resourceManager, tuning)
	if err != nil {
		return nil, fmt.Errorf("游戏初始化失败: %w", err)
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(world, keyMap, cfg.Verbose))

	log.Printf("[App] 初始化完成: tps=%d, strict=%v", tuning.Loop.TPS, tuning.Debug.Strict)

	return &App{
		sceneManager: sceneManager,
		world:        world,
		tps:          tuning.Loop.TPS,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（频率由 TPS 决定）
func (a *App) Update() error {
	return a.sceneManager.Update()
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// TPS 返回目标帧率，由 main 传给 ebiten.SetTPS
func (a *App) TPS() int {
	return a.tps
}
