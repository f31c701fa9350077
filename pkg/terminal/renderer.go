package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/game"
	"github.com/gonewx/kokaton/pkg/utils"
)

var (
	groundStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	unknownStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// ScreenRenderer 把 800x600 的逻辑画面缩放到终端格子上，实现 game.Renderer
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer 创建终端渲染器，screen 必须已经 Init
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Present 清屏后按顺序绘制，后绘制的覆盖先绘制的
func (r *ScreenRenderer) Present(cmds []game.DrawCommand) error {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	r.screen.Clear()
	for _, cmd := range cmds {
		ch, style := '#', unknownStyle
		switch sprite := cmd.Sprite.(type) {
		case *Glyph:
			ch, style = sprite.Rune, sprite.Style
		case nil:
			if cmd.Ground {
				ch, style = '▓', groundStyle
			}
		}
		r.fill(CellRect(cmd.Rect, cols, rows), ch, style)
	}
	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) fill(c Cells, ch rune, style tcell.Style) {
	for y := c.Y0; y <= c.Y1; y++ {
		for x := c.X0; x <= c.X1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// Cells 格子坐标下的闭区间矩形
type Cells struct {
	X0, Y0, X1, Y1 int
}

// CellRect 把逻辑像素矩形映射到 cols x rows 的格子
// 至少覆盖一个格子，超出屏幕的部分被裁掉（可能得到空区间）
func CellRect(rect utils.Rect, cols, rows int) Cells {
	sx := float64(cols) / config.ScreenWidth
	sy := float64(rows) / config.ScreenHeight

	c := Cells{
		X0: int(math.Floor(rect.Left() * sx)),
		Y0: int(math.Floor(rect.Top() * sy)),
		X1: int(math.Ceil(rect.Right()*sx)) - 1,
		Y1: int(math.Ceil(rect.Bottom()*sy)) - 1,
	}
	if c.X1 < c.X0 {
		c.X1 = c.X0
	}
	if c.Y1 < c.Y0 {
		c.Y1 = c.Y0
	}

	c.X0, c.Y0 = max(c.X0, 0), max(c.Y0, 0)
	c.X1, c.Y1 = min(c.X1, cols-1), min(c.Y1, rows-1)
	return c
}
