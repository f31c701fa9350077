package components

// HyperState 能量状态
type HyperState int

const (
	// HyperNormal 普通状态
	HyperNormal HyperState = iota
	// HyperActive hyper 状态
	HyperActive
)

// HyperInactiveTicks 普通状态下剩余帧数的哨兵值
const HyperInactiveTicks = -1

// String 返回状态名
func (s HyperState) String() string {
	switch s {
	case HyperNormal:
		return "Normal"
	case HyperActive:
		return "Hyper"
	default:
		return "Unknown"
	}
}

// HyperComponent hyper 模式计时器
// 注意：遵循 ECS 原则，组件仅存储数据，计时逻辑在 PlayerSystem 中
//
// 不变式：RemainingTicks < 0 时 State 必为 HyperNormal
type HyperComponent struct {
	State HyperState
	// RemainingTicks 剩余帧数，仅在 HyperActive 时有意义
	RemainingTicks int
}
