package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig 游戏调参配置
//
// 配置文件位置: data/tuning.yaml（默认嵌入二进制，可用 -config 覆盖）
// 未在文件中出现的字段保留 DefaultTuningConfig 的值。
type TuningConfig struct {
	Player PlayerTuning `yaml:"player"`
	Jump   JumpTuning   `yaml:"jump"`
	Hyper  HyperTuning  `yaml:"hyper"`
	Star   StarTuning   `yaml:"star"`
	Beam   BeamTuning   `yaml:"beam"`
	Loop   LoopTuning   `yaml:"loop"`
	Keys   KeyBindings  `yaml:"keys"`
	Debug  DebugTuning  `yaml:"debug"`
}

// PlayerTuning 玩家（こうかとん）参数
type PlayerTuning struct {
	// Image 图像编号
	Image string `yaml:"image"`
	// X 初始中心X坐标
	X float64 `yaml:"x"`
	// RestY 初始中心Y坐标，跳跃结束后回到的高度
	RestY float64 `yaml:"restY"`
	// Speed 每帧移动像素数
	Speed float64 `yaml:"speed"`
	// CanFire 是否处于光束模式
	CanFire bool `yaml:"canFire"`
}

// JumpTuning 跳跃弧线参数
type JumpTuning struct {
	// Height 总上升距离
	Height float64 `yaml:"height"`
	// Speed 每帧纵向位移
	Speed float64 `yaml:"speed"`
	// PauseTicks 顶点停留帧数
	PauseTicks int `yaml:"pauseTicks"`
}

// HyperTuning hyper 模式参数
type HyperTuning struct {
	// DurationTicks 拾取星星后 hyper 持续帧数
	DurationTicks int `yaml:"durationTicks"`
}

// StarTuning 星星（可收集物）参数
type StarTuning struct {
	Image string `yaml:"image"`
	// SpawnTick 生成帧号（一次性触发）
	SpawnTick int `yaml:"spawnTick"`
	// SpawnInterval 大于 0 时改为周期生成
	SpawnInterval int     `yaml:"spawnInterval"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	// Speed 每帧向左漂移像素数
	Speed float64 `yaml:"speed"`
	// DespawnOffscreen 完全离开画面左侧后是否移除
	DespawnOffscreen bool `yaml:"despawnOffscreen"`
}

// BeamTuning 光束参数
type BeamTuning struct {
	Image string  `yaml:"image"`
	Speed float64 `yaml:"speed"`
	// MaxAlive 同时存在的光束上限
	MaxAlive int `yaml:"maxAlive"`
}

// LoopTuning 主循环参数
type LoopTuning struct {
	// TPS 每秒逻辑帧数
	TPS int `yaml:"tps"`
}

// KeyBindings 按键名称，使用 Ebitengine 的键名（如 "ArrowUp"、"Space"、"F"）
type KeyBindings struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
	Jump string `yaml:"jump"`
	Fire string `yaml:"fire"`
	Quit string `yaml:"quit"`
}

// DebugTuning 调试选项
type DebugTuning struct {
	// Strict 为 true 时状态机契约被破坏立即 panic，否则修正并记录日志
	Strict bool `yaml:"strict"`
}

// DefaultTuningConfig 返回与 data/tuning.yaml 一致的默认配置
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		Player: PlayerTuning{
			Image:   "3",
			X:       200,
			RestY:   ScreenHeight - 225,
			Speed:   10,
			CanFire: true,
		},
		Jump: JumpTuning{
			Height:     200,
			Speed:      5,
			PauseTicks: 15,
		},
		Hyper: HyperTuning{
			DurationTicks: 500,
		},
		Star: StarTuning{
			Image:     "star",
			SpawnTick: 200,
			X:         ScreenWidth + 50,
			Y:         ScreenHeight - 225,
			Speed:     5,
		},
		Beam: BeamTuning{
			Image:    "beam",
			Speed:    10,
			MaxAlive: 1,
		},
		Loop: LoopTuning{
			TPS: 100,
		},
		Keys: KeyBindings{
			Up:   "ArrowUp",
			Down: "ArrowDown",
			Jump: "Space",
			Fire: "F",
			Quit: "Escape",
		},
	}
}

// LoadTuningConfig 从文件加载调参配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 校验通过的配置
//   - error: 读取、解析或校验失败
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// ParseTuningConfig 解析 YAML 格式的调参配置
// 以默认配置为底，文件中的字段覆盖默认值
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuningConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 速度、帧率为正
//   - 跳跃高度是跳跃速度的整数倍（保证弧线精确回到起点）
//   - 计时类参数非负
//   - 图像与按键名称非空
func (c *TuningConfig) Validate() error {
	var errs []error

	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %.1f", c.Player.Speed))
	}
	if c.Jump.Speed <= 0 || c.Jump.Height <= 0 {
		errs = append(errs, fmt.Errorf("jump height(%.1f) and speed(%.1f) must be positive", c.Jump.Height, c.Jump.Speed))
	} else if math.Mod(c.Jump.Height, c.Jump.Speed) != 0 {
		errs = append(errs, fmt.Errorf("jump height(%.1f) must be a multiple of jump speed(%.1f)", c.Jump.Height, c.Jump.Speed))
	}
	if c.Jump.PauseTicks < 0 {
		errs = append(errs, fmt.Errorf("jump pauseTicks must be >= 0, got %d", c.Jump.PauseTicks))
	}
	if c.Hyper.DurationTicks < 0 {
		errs = append(errs, fmt.Errorf("hyper durationTicks must be >= 0, got %d", c.Hyper.DurationTicks))
	}
	if c.Star.SpawnTick < 0 || c.Star.SpawnInterval < 0 {
		errs = append(errs, fmt.Errorf("star spawnTick(%d) and spawnInterval(%d) must be >= 0", c.Star.SpawnTick, c.Star.SpawnInterval))
	}
	if c.Star.Speed <= 0 {
		errs = append(errs, fmt.Errorf("star speed must be positive, got %.1f", c.Star.Speed))
	}
	if c.Beam.Speed <= 0 {
		errs = append(errs, fmt.Errorf("beam speed must be positive, got %.1f", c.Beam.Speed))
	}
	if c.Beam.MaxAlive < 1 {
		errs = append(errs, fmt.Errorf("beam maxAlive must be >= 1, got %d", c.Beam.MaxAlive))
	}
	if c.Loop.TPS <= 0 {
		errs = append(errs, fmt.Errorf("loop tps must be positive, got %d", c.Loop.TPS))
	}

	for field, image := range map[string]string{
		"player.image": c.Player.Image,
		"star.image":   c.Star.Image,
		"beam.image":   c.Beam.Image,
	} {
		if image == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", field))
		}
	}

	for field, name := range map[string]string{
		"keys.up":   c.Keys.Up,
		"keys.down": c.Keys.Down,
		"keys.jump": c.Keys.Jump,
		"keys.fire": c.Keys.Fire,
		"keys.quit": c.Keys.Quit,
	} {
		if name == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", field))
		}
	}

	if err := DefaultPlayfield().Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
