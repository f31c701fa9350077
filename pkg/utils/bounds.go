package utils

import "github.com/gonewx/kokaton/pkg/config"

// CheckBounds 判断矩形是否位于画面横向范围和可活动区域纵向范围内
//
// 返回:
//   - horizontalOK: 左边界 >= 0 且右边界 <= 画面宽度
//   - verticalOK: 上边界 >= 0 且下边界 <= 画面高度 - 地面带高度
func CheckBounds(r Rect) (horizontalOK, verticalOK bool) {
	return CheckBoundsIn(r, config.DefaultPlayfield())
}

// CheckBoundsIn 使用指定的可活动区域做边界判断
func CheckBoundsIn(r Rect, p config.PlayfieldBounds) (horizontalOK, verticalOK bool) {
	horizontalOK, verticalOK = true, true
	if r.Left() < 0 || r.Right() > p.Width {
		horizontalOK = false
	}
	if r.Top() < 0 || r.Bottom() > p.Bottom() {
		verticalOK = false
	}
	return horizontalOK, verticalOK
}

// InBounds 两个方向都在范围内时返回 true
func InBounds(r Rect) bool {
	h, v := CheckBounds(r)
	return h && v
}
