package utils

// Rect 轴对齐包围盒（AABB），X/Y 为左上角
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRectCentered 以中心点和尺寸创建矩形
func NewRectCentered(cx, cy, width, height float64) Rect {
	return Rect{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

// Left 左边界
func (r Rect) Left() float64 { return r.X }

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Top 上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 中心X坐标
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 中心Y坐标
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// SetCenterY 保持尺寸不变，把中心移动到指定Y坐标
func (r *Rect) SetCenterY(cy float64) {
	r.Y = cy - r.Height/2
}

// Move 原地平移
func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Moved 返回平移后的副本
func (r Rect) Moved(dx, dy float64) Rect {
	r.Move(dx, dy)
	return r
}

// Overlaps 判断两个矩形是否重叠
// 仅边缘接触不算重叠
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		o.Left() < r.Right() &&
		r.Top() < o.Bottom() &&
		o.Top() < r.Bottom()
}
