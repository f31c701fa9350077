package game

import (
	"fmt"
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/entities"
	"github.com/gonewx/kokaton/pkg/systems"
	"github.com/gonewx/kokaton/pkg/types"
)

// DrawCommand 一条绘制请求（图像 + 矩形），地面带的 Sprite 为空
type DrawCommand = systems.DrawCommand

// World 帧编排器
//
// 持有唯一的实体管理器、玩家实体和所有系统，按固定顺序推进一帧：
//
//	退出信号 → 玩家更新 → 星星/光束生成 → 碰撞结算 → 星星漂移 → 光束移动 → 绘制列表 → tick++
//
// 绘制列表在碰撞结算之后生成，拾取星星的同一帧就能看到 hyper 图像。
// World 不是并发安全的，只能在更新 goroutine 中使用。
type World struct {
	entityManager *ecs.EntityManager
	config        *config.TuningConfig
	playerID      ecs.EntityID

	playerSystem      *systems.PlayerSystem
	spawnSystem       *systems.SpawnSystem
	collisionSystem   *systems.CollisionSystem
	collectibleSystem *systems.CollectibleSystem
	projectileSystem  *systems.ProjectileSystem
	renderSystem      *systems.RenderSystem

	tick     int
	drawList []DrawCommand
}

// NewWorld 创建帧编排器并生成玩家
//
// 星星和光束的图像在这里预先解析一次，资源缺失在启动时就失败，
// 而不是等到第一次生成时。
//
// 参数:
//   - loader: 资源协作方
//   - cfg: 调参配置，为 nil 时使用 DefaultTuningConfig
//
// 返回:
//   - error: 配置无效，或包装了 ErrAssetResolution 的资源错误
func NewWorld(loader types.SpriteLoader, cfg *config.TuningConfig) (*World, error) {
	if loader == nil {
		return nil, fmt.Errorf("sprite loader cannot be nil")
	}
	if cfg == nil {
		cfg = config.DefaultTuningConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	if err := preloadSprites(loader, cfg); err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	playerID, err := entities.NewPlayerEntity(em, loader, cfg)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	w := &World{
		entityManager:     em,
		config:            cfg,
		playerID:          playerID,
		playerSystem:      systems.NewPlayerSystem(em, config.NewMovementTable(), cfg),
		spawnSystem:       systems.NewSpawnSystem(em, loader, cfg),
		collisionSystem:   systems.NewCollisionSystem(em),
		collectibleSystem: systems.NewCollectibleSystem(em),
		projectileSystem:  systems.NewProjectileSystem(em),
		renderSystem:      systems.NewRenderSystem(em),
	}
	w.drawList = w.renderSystem.Build()

	log.Printf("[World] 初始化完成: player=%d, strict=%v", playerID, cfg.Debug.Strict)
	return w, nil
}

func preloadSprites(loader types.SpriteLoader, cfg *config.TuningConfig) error {
	keys := []types.SpriteKey{
		{Name: cfg.Star.Image},
		{Name: cfg.Beam.Image},
		{Name: cfg.Beam.Image, FlipX: true},
	}
	for _, key := range keys {
		if _, err := loader.LoadSprite(key); err != nil {
			return fmt.Errorf("%w: preload %q: %w", ErrAssetResolution, key.Name, err)
		}
	}
	return nil
}

// Step 推进一帧
//
// 按下退出键时返回 ErrQuit，本帧不做任何更新。
// 其余错误只可能来自运行期的实体生成（资源解析失败）。
func (w *World) Step(keys types.KeyState) error {
	if keys.Pressed(types.InputQuit) {
		log.Printf("[World] 收到退出信号 (tick=%d)", w.tick)
		return ErrQuit
	}

	w.playerSystem.Update(keys)

	if err := w.spawnSystem.Update(w.tick, keys, w.playerID); err != nil {
		return err
	}

	if n := w.collisionSystem.Update(w.playerID); n > 0 {
		log.Printf("[World] tick=%d 拾取 %d 颗星星", w.tick, n)
	}
	w.entityManager.RemoveMarkedEntities()

	w.collectibleSystem.Update()
	w.projectileSystem.Update()
	w.entityManager.RemoveMarkedEntities()

	w.drawList = w.renderSystem.Build()
	w.tick++
	return nil
}

// DrawList 最近一帧的绘制请求
// 返回的切片在下一次 Step 之前有效
func (w *World) DrawList() []DrawCommand {
	return w.drawList
}

// Tick 已完成的帧数
func (w *World) Tick() int {
	return w.tick
}

// PlayerID 玩家实体
func (w *World) PlayerID() ecs.EntityID {
	return w.playerID
}

// BeamMode 玩家当前是否可以发射光束
func (w *World) BeamMode() bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](w.entityManager, w.playerID)
	return ok && player.CanFire
}

// SetBeamMode 运行期开关光束模式，下一次按下发射键时生效
func (w *World) SetBeamMode(on bool) {
	systems.SetCanFire(w.entityManager, w.playerID, on)
	log.Printf("[World] 光束模式: %v", on)
}

// EntityManager 返回底层实体管理器（调试和测试用）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// Config 当前调参配置
func (w *World) Config() *config.TuningConfig {
	return w.config
}
