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

// NewPlayerEntity 创建玩家（こうかとん）实体
//
// 八方向图像表在此一次性加载：向左的朝向使用原始图像，其余朝向使用水平翻转的图像，
// 每个朝向同时加载 hyper 滤镜版本。碰撞盒尺寸取朝右图像的尺寸。
//
// 参数:
//   - em: 实体管理器
//   - loader: 资源协作方
//   - cfg: 调参配置（使用 Player、Jump 段）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 图像解析失败时返回包装了 ErrAssetResolution 的错误
func NewPlayerEntity(em *ecs.EntityManager, loader types.SpriteLoader, cfg *config.TuningConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if loader == nil {
		return 0, fmt.Errorf("sprite loader cannot be nil")
	}

	orientation, err := loadOrientationTable(loader, cfg.Player.Image)
	if err != nil {
		return 0, err
	}

	w, h := orientation.Normal[types.DirRight].Size()
	rect := utils.NewRectCentered(cfg.Player.X, cfg.Player.RestY, float64(w), float64(h))

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		Facing:         types.DirRight,
		LastHorizontal: 1,
		Speed:          cfg.Player.Speed,
		CanFire:        cfg.Player.CanFire,
	})
	ecs.AddComponent(em, entityID, &components.HyperComponent{
		State:          components.HyperNormal,
		RemainingTicks: components.HyperInactiveTicks,
	})
	ecs.AddComponent(em, entityID, &components.JumpComponent{
		Phase: components.JumpIdle,
		RestY: rect.CenterY(),
	})
	ecs.AddComponent(em, entityID, orientation)
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image: orientation.Normal[types.DirRight],
	})

	log.Printf("[PlayerFactory] 创建玩家 %d: image=%s, center=(%.0f, %.0f), size=%dx%d",
		entityID, cfg.Player.Image, rect.CenterX(), rect.CenterY(), w, h)

	return entityID, nil
}

// loadOrientationTable 加载八方向的普通与 hyper 图像
func loadOrientationTable(loader types.SpriteLoader, image string) (*components.OrientationComponent, error) {
	table := &components.OrientationComponent{}

	for d := types.Direction(0); d < types.DirectionCount; d++ {
		key := types.SpriteKey{Name: image, FlipX: !d.IsLeftward()}

		normal, err := loader.LoadSprite(key)
		if err != nil {
			return nil, fmt.Errorf("%w: player image %q (%v): %w", ErrAssetResolution, image, d, err)
		}

		key.Hyper = true
		hyper, err := loader.LoadSprite(key)
		if err != nil {
			return nil, fmt.Errorf("%w: player hyper image %q (%v): %w", ErrAssetResolution, image, d, err)
		}

		table.Normal[d] = normal
		table.Hyper[d] = hyper
	}

	return table, nil
}
