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

// NewBeamEntity 创建光束实体
//
// 光束中心位于玩家碰撞盒沿方向的边缘外侧半个光束宽度处，
// 方向只保留横向分量。
//
// 参数:
//   - em: 实体管理器
//   - loader: 资源协作方
//   - cfg: 调参配置（使用 Beam 段）
//   - shooter: 发射者的碰撞盒
//   - direction: 横向单位方向，X 为 +1 或 -1
func NewBeamEntity(em *ecs.EntityManager, loader types.SpriteLoader, cfg *config.TuningConfig, shooter utils.Rect, direction types.Vector) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if direction.X == 0 || direction.Y != 0 {
		return 0, fmt.Errorf("beam direction must be horizontal, got %+v", direction)
	}

	// 朝左时使用水平翻转的图像
	sprite, err := loader.LoadSprite(types.SpriteKey{Name: cfg.Beam.Image, FlipX: direction.X < 0})
	if err != nil {
		return 0, fmt.Errorf("%w: beam image %q: %w", ErrAssetResolution, cfg.Beam.Image, err)
	}

	w, h := sprite.Size()
	dx := float64(direction.X)
	cx := shooter.CenterX() + dx*(shooter.Width/2+float64(w)/2)
	cy := shooter.CenterY()
	rect := utils.NewRectCentered(cx, cy, float64(w), float64(h))

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		Direction: direction,
		Speed:     cfg.Beam.Speed,
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Image: sprite})

	log.Printf("[BeamFactory] 创建光束 %d at (%.0f, %.0f), dir=%+v", entityID, cx, cy, direction)

	return entityID, nil
}
