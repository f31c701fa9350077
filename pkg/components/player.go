package components

import "github.com/gonewx/kokaton/pkg/types"

// PlayerComponent 玩家（こうかとん）的移动状态
type PlayerComponent struct {
	// Facing 最近一次非零净位移对应的朝向
	Facing types.Direction
	// LastHorizontal 最近一次带横向分量的朝向的横向符号（+1 或 -1）
	// 光束方向只取横向，纵向朝向时沿用此值
	LastHorizontal int
	// Speed 每帧移动像素数
	Speed float64
	// CanFire 光束模式开关
	CanFire bool
}
