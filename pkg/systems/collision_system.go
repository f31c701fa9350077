package systems

import (
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/ecs"
)

// CollisionSystem 玩家与星星的碰撞结算
type CollisionSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
	}
}

// Update 检测玩家与所有存活星星的两两碰撞
//
// 碰到的星星被标记删除，玩家进入 hyper 模式；未重叠的星星不受影响。
// 返回本帧被拾取的星星数量。
func (s *CollisionSystem) Update(playerID ecs.EntityID) int {
	if !s.entityManager.EntityExists(playerID) || s.entityManager.IsMarkedForDestroy(playerID) {
		return 0
	}
	playerRect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, playerID)
	if !ok {
		return 0
	}

	stars := ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.RectComponent](s.entityManager)

	consumed := 0
	for _, starID := range stars {
		starRect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, starID)
		if !playerRect.Rect.Overlaps(starRect.Rect) {
			continue
		}

		star, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, starID)
		s.entityManager.DestroyEntity(starID)
		consumed++

		if err := EnterHyper(s.entityManager, playerID, star.HyperDuration); err != nil {
			log.Printf("[CollisionSystem] 无法进入 hyper 模式: %v", err)
		}
		log.Printf("[CollisionSystem] 拾取星星 %d", starID)
	}

	return consumed
}
