package systems

import (
	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/ecs"
)

// CollectibleSystem 星星的漂移
type CollectibleSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollectibleSystem 创建星星系统
func NewCollectibleSystem(em *ecs.EntityManager) *CollectibleSystem {
	return &CollectibleSystem{
		entityManager: em,
	}
}

// Update 每帧按速度平移所有星星
// 只有开启 DespawnOffscreen 的星星在完全离开画面左侧后被移除
func (s *CollectibleSystem) Update() {
	stars := ecs.GetEntitiesWith3[
		*components.CollectibleComponent,
		*components.RectComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range stars {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		star, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)

		rect.Rect.Move(vel.VX, vel.VY)

		if star.DespawnOffscreen && rect.Rect.Right() < 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
