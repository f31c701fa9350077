package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
)

// ErrInvalidStateTransition 跳跃或 hyper 状态机的不变式被破坏
// 按照状态机的守卫条件实现时不会出现，出现即为编程错误
var ErrInvalidStateTransition = errors.New("invalid state transition")

// contractGuard 处理契约违反
//
// strict 模式（调试构建）直接 panic；否则把状态修正到合法值并记录日志。
type contractGuard struct {
	strict bool
}

func (g contractGuard) violated(tag string, err error) {
	if g.strict {
		panic(err)
	}
	log.Printf("[%s] %v (已修正)", tag, err)
}

// checkJump 检查跳跃状态不变式，必要时修正
func (g contractGuard) checkJump(j *components.JumpComponent, cfg config.JumpTuning) {
	if j.Phase < components.JumpIdle || j.Phase > components.JumpDescending {
		g.violated("PlayerSystem", fmt.Errorf("%w: unknown jump phase %d", ErrInvalidStateTransition, j.Phase))
		*j = components.JumpComponent{Phase: components.JumpIdle, RestY: j.RestY}
		return
	}

	if j.Progress < 0 || j.Progress > cfg.Height {
		g.violated("PlayerSystem", fmt.Errorf("%w: jump progress %.1f outside [0, %.1f]",
			ErrInvalidStateTransition, j.Progress, cfg.Height))
		switch {
		case j.Phase == components.JumpIdle || j.Progress < 0:
			// 静止时进度必须归零，否则守卫条件永远无法再次起跳
			j.Progress = 0
			j.ElapsedTicks = 0
		default:
			j.Progress = cfg.Height
		}
	}
}

// checkHyper 检查 hyper 状态不变式，必要时修正
func (g contractGuard) checkHyper(h *components.HyperComponent) {
	if h.State != components.HyperNormal && h.State != components.HyperActive {
		g.violated("PlayerSystem", fmt.Errorf("%w: unknown hyper state %d", ErrInvalidStateTransition, h.State))
		h.State = components.HyperNormal
		h.RemainingTicks = components.HyperInactiveTicks
		return
	}

	if h.State == components.HyperActive && h.RemainingTicks < 0 {
		g.violated("PlayerSystem", fmt.Errorf("%w: hyper active with %d remaining ticks",
			ErrInvalidStateTransition, h.RemainingTicks))
		h.State = components.HyperNormal
		h.RemainingTicks = components.HyperInactiveTicks
	}
}
