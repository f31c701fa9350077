package components

// JumpPhase 跳跃阶段
type JumpPhase int

const (
	// JumpIdle 静止，可以起跳
	JumpIdle JumpPhase = iota
	// JumpAscending 上升中
	JumpAscending
	// JumpPausedAtPeak 在顶点停留
	JumpPausedAtPeak
	// JumpDescending 下降中
	JumpDescending
)

// String 返回阶段名
func (p JumpPhase) String() string {
	switch p {
	case JumpIdle:
		return "Idle"
	case JumpAscending:
		return "Ascending"
	case JumpPausedAtPeak:
		return "PausedAtPeak"
	case JumpDescending:
		return "Descending"
	default:
		return "Unknown"
	}
}

// JumpComponent 跳跃状态机的数据
//
// 状态流转由 PlayerSystem 驱动：
//
//	Idle -> Ascending -> PausedAtPeak -> Descending -> Idle
//
// 弧线中途不读取输入，不能取消或重新触发。
type JumpComponent struct {
	Phase JumpPhase
	// Progress 已上升的累计距离，范围 [0, JumpHeight]
	Progress float64
	// ElapsedTicks 上升已用帧数
	ElapsedTicks int
	// PauseTicks 顶点已停留帧数
	PauseTicks int
	// RestY 跳跃结束后回到的中心Y坐标
	RestY float64
}
