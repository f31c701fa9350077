package entities

import (
	"fmt"

	"github.com/gonewx/kokaton/pkg/types"
)

// StubSprite 测试用图像句柄，只携带尺寸和来源
type StubSprite struct {
	Key           types.SpriteKey
	Width, Height int
}

// Size 实现 types.Sprite
func (s *StubSprite) Size() (int, int) {
	return s.Width, s.Height
}

// StubSpriteLoader 测试用资源协作方
//
// Sizes 按图像名指定尺寸，未指定时使用 DefaultWidth/DefaultHeight；
// Missing 中的图像名解析失败。
type StubSpriteLoader struct {
	Sizes         map[string][2]int
	Missing       map[string]bool
	DefaultWidth  int
	DefaultHeight int
	Calls         int
}

// NewStubSpriteLoader 创建默认尺寸为 40x40 的测试资源协作方
func NewStubSpriteLoader() *StubSpriteLoader {
	return &StubSpriteLoader{
		Sizes:         make(map[string][2]int),
		Missing:       make(map[string]bool),
		DefaultWidth:  40,
		DefaultHeight: 40,
	}
}

// LoadSprite 实现 types.SpriteLoader
func (l *StubSpriteLoader) LoadSprite(key types.SpriteKey) (types.Sprite, error) {
	l.Calls++
	if l.Missing[key.Name] {
		return nil, fmt.Errorf("image %q not found", key.Name)
	}
	w, h := l.DefaultWidth, l.DefaultHeight
	if size, ok := l.Sizes[key.Name]; ok {
		w, h = size[0], size[1]
	}
	return &StubSprite{Key: key, Width: w, Height: h}, nil
}

