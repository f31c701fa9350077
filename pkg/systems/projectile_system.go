package systems

import (
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/utils"
)

// ProjectileSystem 光束的移动与出界销毁
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建光束系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
	}
}

// Update 平移所有光束，任一方向越界即标记删除
func (s *ProjectileSystem) Update() {
	beams := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.RectComponent](s.entityManager)

	for _, id := range beams {
		beam, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)

		rect.Rect.Move(beam.Speed*float64(beam.Direction.X), beam.Speed*float64(beam.Direction.Y))

		if !utils.InBounds(rect.Rect) {
			s.entityManager.DestroyEntity(id)
			log.Printf("[ProjectileSystem] 光束 %d 出界", id)
		}
	}
}
