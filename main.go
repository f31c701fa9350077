package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/gonewx/kokaton/pkg/app"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "调参配置文件路径（默认使用内置 data/tuning.yaml）")
	assetsDir  = flag.String("assets", "", "图像目录（默认使用内置 assets/fig）")
	tps        = flag.Int("tps", 0, "每秒逻辑帧数（0 表示使用配置值）")
	strict     = flag.Bool("strict", false, "状态机契约被破坏时立即 panic")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	tuning, err := loadTuning(*configPath)
	if err != nil {
		log.Fatalf("Failed to load tuning config: %v", err)
	}

	assets, err := openAssets(*assetsDir)
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Tuning:  tuning,
		Assets:  assets,
		TPS:     *tps,
		Strict:  *strict,
	})
	if err != nil {
		// NewApp 可能已关闭日志输出，致命错误直接写 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(game.TPS())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// loadTuning 未指定路径时读取内置配置
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}
	data, err := embedded.ReadFile("data/tuning.yaml")
	if err != nil {
		return nil, err
	}
	return config.ParseTuningConfig(data)
}

func openAssets(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return embedded.Sub("assets/fig")
}
