package systems

import (
	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/types"
	"github.com/gonewx/kokaton/pkg/utils"
)

// DrawCommand 一条绘制请求
// Ground 为 true 时表示地面带，Sprite 为空
type DrawCommand struct {
	Sprite types.Sprite
	Rect   utils.Rect
	Ground bool
}

// RenderSystem 生成一帧的绘制请求列表
//
// 顺序固定：地面、玩家、星星、光束。
// 绘制本身由渲染协作方完成，本系统不依赖任何图形库。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	commands      []DrawCommand // 复用，避免每帧分配
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		commands:      make([]DrawCommand, 0, 8),
	}
}

// GroundRect 地面带所在的矩形
func GroundRect() utils.Rect {
	return utils.Rect{
		X:      0,
		Y:      config.ScreenHeight - config.GroundBandHeight,
		Width:  config.ScreenWidth,
		Height: config.GroundBandHeight,
	}
}

// Build 按当前组件状态生成绘制列表
// 返回的切片在下一次 Build 前有效
func (s *RenderSystem) Build() []DrawCommand {
	s.commands = s.commands[:0]
	s.commands = append(s.commands, DrawCommand{Rect: GroundRect(), Ground: true})

	s.appendSprites(ecs.GetEntitiesWith2[*components.PlayerComponent, *components.SpriteComponent](s.entityManager))
	s.appendSprites(ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.SpriteComponent](s.entityManager))
	s.appendSprites(ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.SpriteComponent](s.entityManager))

	return s.commands
}

func (s *RenderSystem) appendSprites(ids []ecs.EntityID) {
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !ok || sprite.Image == nil {
			continue
		}
		s.commands = append(s.commands, DrawCommand{Sprite: sprite.Image, Rect: rect.Rect})
	}
}
