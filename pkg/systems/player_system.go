package systems

import (
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/types"
	"github.com/gonewx/kokaton/pkg/utils"
)

// PlayerSystem 玩家的每帧更新
//
// 顺序固定：
//  1. 按移动表位移，越界则整帧回滚（不做贴边修正）
//  2. 净位移非零时更新朝向和图像
//  3. hyper 计时
//  4. 跳跃状态机
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	movement      *config.MovementTable
	config        *config.TuningConfig
	guard         contractGuard
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - em: 实体管理器
//   - movement: 只读的移动映射表
//   - cfg: 调参配置，Debug.Strict 决定契约违反时 panic 还是修正
func NewPlayerSystem(em *ecs.EntityManager, movement *config.MovementTable, cfg *config.TuningConfig) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		movement:      movement,
		config:        cfg,
		guard:         contractGuard{strict: cfg.Debug.Strict},
	}
}

// Update 更新所有玩家实体
func (s *PlayerSystem) Update(keys types.KeyState) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.RectComponent,
		*components.JumpComponent,
	](s.entityManager)

	for _, id := range players {
		s.updatePlayer(id, keys)
	}
}

func (s *PlayerSystem) updatePlayer(id ecs.EntityID, keys types.KeyState) {
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
	jump, _ := ecs.GetComponent[*components.JumpComponent](s.entityManager, id)

	net := s.move(player, &rect.Rect, keys)

	if dir, ok := types.DirectionFromDelta(net); ok {
		player.Facing = dir
		if v := dir.Vector(); v.X != 0 {
			player.LastHorizontal = v.X
		}
	}

	if hyper, ok := ecs.GetComponent[*components.HyperComponent](s.entityManager, id); ok {
		if tickHyper(hyper) {
			log.Printf("[PlayerSystem] hyper 模式结束")
		}
		s.guard.checkHyper(hyper)
	}

	refreshPlayerSprite(s.entityManager, id)

	stepJump(jump, &rect.Rect, keys.Pressed(types.InputJump), s.config.Jump)
	s.guard.checkJump(jump, s.config.Jump)
}

// move 按下的方向键的位移合并后一次施加，整体越界时全部撤销
// 返回本帧按键的净方向（即使被撤销也用于更新朝向）
func (s *PlayerSystem) move(player *components.PlayerComponent, rect *utils.Rect, keys types.KeyState) types.Vector {
	var net types.Vector
	for _, binding := range s.movement.Bindings() {
		if keys.Pressed(binding.Symbol) {
			net = net.Add(binding.Delta)
		}
	}

	if moved := rect.Moved(player.Speed*float64(net.X), player.Speed*float64(net.Y)); utils.InBounds(moved) {
		*rect = moved
	}

	return net
}
