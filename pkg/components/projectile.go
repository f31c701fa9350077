package components

import "github.com/gonewx/kokaton/pkg/types"

// ProjectileComponent 光束
// 方向在生成时锁定为纯横向，离开画面即销毁
type ProjectileComponent struct {
	Direction types.Vector
	Speed     float64
}
