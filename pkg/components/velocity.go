package components

// VelocityComponent 每帧固定位移
type VelocityComponent struct {
	VX float64
	VY float64
}
