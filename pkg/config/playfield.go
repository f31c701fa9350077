package config

import "fmt"

// 画面与地面带尺寸（逻辑像素）
//
// 所有实体与边界检测共享这组常量，运行期不可修改。
const (
	// ScreenWidth 逻辑画面宽度
	ScreenWidth = 800
	// ScreenHeight 逻辑画面高度
	ScreenHeight = 600
	// GroundBandHeight 画面底部地面带的高度
	// 纵向边界检测以 ScreenHeight - GroundBandHeight 为下边界
	GroundBandHeight = 200

	// WindowTitle 窗口标题
	WindowTitle = "走れこうかとん"
)

// PlayfieldBounds 可活动区域的尺寸
type PlayfieldBounds struct {
	Width        float64
	Height       float64
	GroundHeight float64
}

// DefaultPlayfield 返回由常量构成的默认可活动区域
func DefaultPlayfield() PlayfieldBounds {
	return PlayfieldBounds{
		Width:        ScreenWidth,
		Height:       ScreenHeight,
		GroundHeight: GroundBandHeight,
	}
}

// Bottom 返回可活动区域的下边界（地面带上沿）
func (p PlayfieldBounds) Bottom() float64 {
	return p.Height - p.GroundHeight
}

// Validate 检查地面带高度必须小于画面高度
func (p PlayfieldBounds) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("playfield size must be positive, got %.0fx%.0f", p.Width, p.Height)
	}
	if p.GroundHeight < 0 || p.GroundHeight >= p.Height {
		return fmt.Errorf("ground band height %.0f must be in [0, %.0f)", p.GroundHeight, p.Height)
	}
	return nil
}
