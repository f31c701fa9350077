package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/entities"
	"github.com/gonewx/kokaton/pkg/types"
)

// ShouldSpawnCollectible 判断本帧是否生成星星
//
// SpawnInterval 为 0 时只在 tick == SpawnTick 生成一次；
// 大于 0 时在每个 SpawnInterval 的整数倍帧生成（第 0 帧除外）。
func ShouldSpawnCollectible(tick int, star config.StarTuning) bool {
	if star.SpawnInterval > 0 {
		return tick > 0 && tick%star.SpawnInterval == 0
	}
	return tick == star.SpawnTick
}

// EdgeTracker 记录上一帧的按键状态，用于检测按下瞬间
type EdgeTracker struct {
	prevPressed bool
}

// Rising 本帧按下且上一帧未按下时返回 true
func (e *EdgeTracker) Rising(pressed bool) bool {
	rising := pressed && !e.prevPressed
	e.prevPressed = pressed
	return rising
}

// SpawnSystem 负责星星的定时生成和光束的发射
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	loader        types.SpriteLoader
	config        *config.TuningConfig
	fireEdge      EdgeTracker
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, loader types.SpriteLoader, cfg *config.TuningConfig) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		loader:        loader,
		config:        cfg,
	}
}

// Update 检查星星生成计时和发射输入
//
// 参数:
//   - tick: 编排器持有的帧计数
//   - keys: 本帧按键状态
//   - playerID: 玩家实体
func (s *SpawnSystem) Update(tick int, keys types.KeyState, playerID ecs.EntityID) error {
	if ShouldSpawnCollectible(tick, s.config.Star) {
		if _, err := entities.NewStarEntity(s.entityManager, s.loader, s.config); err != nil {
			return fmt.Errorf("spawn star at tick %d: %w", tick, err)
		}
	}

	if s.fireEdge.Rising(keys.Pressed(types.InputFire)) {
		if _, err := s.tryFire(playerID); err != nil {
			return err
		}
	}

	return nil
}

// tryFire 满足条件时发射一束光束
// 条件：光束模式开启，且存活光束数量小于上限
func (s *SpawnSystem) tryFire(playerID ecs.EntityID) (bool, error) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok || !player.CanFire {
		return false, nil
	}

	alive := len(ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager))
	if alive >= s.config.Beam.MaxAlive {
		log.Printf("[SpawnSystem] 光束已达上限 (%d)，忽略发射", alive)
		return false, nil
	}

	rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, playerID)
	if !ok {
		return false, nil
	}

	direction := types.Vector{X: player.LastHorizontal}
	if direction.X == 0 {
		direction.X = 1
	}

	if _, err := entities.NewBeamEntity(s.entityManager, s.loader, s.config, rect.Rect, direction); err != nil {
		return false, fmt.Errorf("fire beam: %w", err)
	}
	return true, nil
}

// SetCanFire 切换玩家的光束模式
// 初始值来自 player.canFire 配置，运行期由 World.SetBeamMode 调用
func SetCanFire(em *ecs.EntityManager, playerID ecs.EntityID, canFire bool) {
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID); ok {
		player.CanFire = canFire
	}
}
