package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/types"
	"github.com/gonewx/kokaton/pkg/utils"
)

// NewStarEntity 创建星星实体
// 星星在画面右侧外的固定位置生成，以恒定速度向左漂移
func NewStarEntity(em *ecs.EntityManager, loader types.SpriteLoader, cfg *config.TuningConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	sprite, err := loader.LoadSprite(types.SpriteKey{Name: cfg.Star.Image})
	if err != nil {
		return 0, fmt.Errorf("%w: star image %q: %w", ErrAssetResolution, cfg.Star.Image, err)
	}

	w, h := sprite.Size()
	rect := utils.NewRectCentered(cfg.Star.X, cfg.Star.Y, float64(w), float64(h))

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: -cfg.Star.Speed})
	ecs.AddComponent(em, entityID, &components.CollectibleComponent{
		HyperDuration:    cfg.Hyper.DurationTicks,
		DespawnOffscreen: cfg.Star.DespawnOffscreen,
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Image: sprite})

	log.Printf("[StarFactory] 创建星星 %d at (%.0f, %.0f)", entityID, rect.CenterX(), rect.CenterY())

	return entityID, nil
}
