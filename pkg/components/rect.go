package components

import "github.com/gonewx/kokaton/pkg/utils"

// RectComponent 实体的位置与尺寸（AABB）
// 同时用于移动、边界检测和碰撞检测
type RectComponent struct {
	Rect utils.Rect
}
