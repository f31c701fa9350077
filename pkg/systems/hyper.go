package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/ecs"
)

// EnterHyper 让玩家进入 hyper 模式并持续 durationTicks 帧
//
// 由碰撞结算调用。已处于 hyper 时重新计时。
// 当前图像立即切换为 hyper 版本，使同一帧的绘制就能看到效果。
func EnterHyper(em *ecs.EntityManager, playerID ecs.EntityID, durationTicks int) error {
	hyper, ok := ecs.GetComponent[*components.HyperComponent](em, playerID)
	if !ok {
		return fmt.Errorf("entity %d has no HyperComponent", playerID)
	}
	if durationTicks < 0 {
		return fmt.Errorf("hyper duration must be >= 0, got %d", durationTicks)
	}

	hyper.State = components.HyperActive
	hyper.RemainingTicks = durationTicks
	refreshPlayerSprite(em, playerID)

	log.Printf("[PlayerSystem] 进入 hyper 模式: %d 帧", durationTicks)
	return nil
}

// tickHyper 每帧递减 hyper 剩余帧数，耗尽后回到普通状态
// 返回本帧是否刚刚结束 hyper
func tickHyper(h *components.HyperComponent) bool {
	if h.State == components.HyperActive {
		h.RemainingTicks--
	}
	if h.RemainingTicks < 0 {
		expired := h.State == components.HyperActive
		h.State = components.HyperNormal
		h.RemainingTicks = components.HyperInactiveTicks
		return expired
	}
	return false
}

// refreshPlayerSprite 根据朝向和 hyper 状态从图像表中选择当前图像
func refreshPlayerSprite(em *ecs.EntityManager, playerID ecs.EntityID) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if !ok {
		return
	}
	table, ok := ecs.GetComponent[*components.OrientationComponent](em, playerID)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, playerID)
	if !ok {
		return
	}

	sprite.Image = table.Normal[player.Facing]
	if hyper, ok := ecs.GetComponent[*components.HyperComponent](em, playerID); ok && hyper.State == components.HyperActive {
		sprite.Image = table.Hyper[player.Facing]
	}
}
