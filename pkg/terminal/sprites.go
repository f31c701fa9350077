package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/kokaton/pkg/types"
)

// Glyph 终端中的图像：用一个字符填满实体覆盖的格子
// 宽高为逻辑像素，与图像版本保持一致，碰撞盒因此不随前端变化
type Glyph struct {
	Rune          rune
	Style         tcell.Style
	Width, Height int
}

// Size 实现 types.Sprite
func (g *Glyph) Size() (int, int) {
	return g.Width, g.Height
}

// GlyphSpec 一个图像名对应的字符
// Left 用于原始朝向（向左），Right 用于水平翻转
type GlyphSpec struct {
	Left, Right   rune
	Color         tcell.Color
	Width, Height int
}

// GlyphSpriteLoader 终端版的资源协作方，实现 types.SpriteLoader
type GlyphSpriteLoader struct {
	specs map[string]GlyphSpec
}

// NewGlyphSpriteLoader 创建带默认字符表的加载器
// 尺寸与 assets/fig 中的图像一致
func NewGlyphSpriteLoader() *GlyphSpriteLoader {
	return &GlyphSpriteLoader{
		specs: map[string]GlyphSpec{
			"3":    {Left: '<', Right: '>', Color: tcell.ColorYellow, Width: 56, Height: 48},
			"star": {Left: '*', Right: '*', Color: tcell.ColorGold, Width: 30, Height: 30},
			"beam": {Left: '=', Right: '=', Color: tcell.ColorAqua, Width: 40, Height: 10},
		},
	}
}

// LoadSprite 实现 types.SpriteLoader
// hyper 版本使用反色样式
func (l *GlyphSpriteLoader) LoadSprite(key types.SpriteKey) (types.Sprite, error) {
	spec, ok := l.specs[key.Name]
	if !ok {
		return nil, fmt.Errorf("no glyph registered for image %q", key.Name)
	}

	r := spec.Left
	if key.FlipX {
		r = spec.Right
	}

	style := tcell.StyleDefault.Foreground(spec.Color)
	if key.Hyper {
		style = style.Reverse(true).Bold(true)
	}

	return &Glyph{Rune: r, Style: style, Width: spec.Width, Height: spec.Height}, nil
}
