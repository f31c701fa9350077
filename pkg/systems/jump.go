package systems

import (
	"log"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/utils"
)

// stepJump 推进一帧跳跃状态机
//
// 只有 Idle 阶段读取跳跃键；起跳的同一帧即开始上升。
// 下降阶段到达 RestY 时精确对齐并回到 Idle。
func stepJump(j *components.JumpComponent, rect *utils.Rect, jumpPressed bool, cfg config.JumpTuning) {
	switch j.Phase {
	case components.JumpIdle:
		if !jumpPressed || j.Progress != 0 || j.ElapsedTicks != 0 {
			return
		}
		j.RestY = rect.CenterY()
		j.Phase = components.JumpAscending
		log.Printf("[PlayerSystem] 起跳: restY=%.0f", j.RestY)
		ascend(j, rect, cfg)

	case components.JumpAscending:
		ascend(j, rect, cfg)

	case components.JumpPausedAtPeak:
		j.PauseTicks++
		if j.PauseTicks >= cfg.PauseTicks {
			j.Progress = 0
			j.ElapsedTicks = 0
			j.PauseTicks = 0
			j.Phase = components.JumpDescending
		}

	case components.JumpDescending:
		if rect.CenterY() < j.RestY {
			rect.Move(0, cfg.Speed)
		}
		if rect.CenterY() >= j.RestY {
			rect.SetCenterY(j.RestY)
			j.Phase = components.JumpIdle
			log.Printf("[PlayerSystem] 落地: y=%.0f", j.RestY)
		}
	}
}

func ascend(j *components.JumpComponent, rect *utils.Rect, cfg config.JumpTuning) {
	rect.Move(0, -cfg.Speed)
	j.Progress += cfg.Speed
	j.ElapsedTicks++
	if j.Progress >= cfg.Height {
		j.Phase = components.JumpPausedAtPeak
	}
}
