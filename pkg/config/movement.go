package config

import "github.com/gonewx/kokaton/pkg/types"

// MovementBinding 方向输入与单位位移的对应关系
type MovementBinding struct {
	Symbol types.InputSymbol
	Delta  types.Vector
}

// MovementTable 不可变的移动映射表
// 启动时构建一次，以只读方式传给移动逻辑
type MovementTable struct {
	bindings []MovementBinding
}

// NewMovementTable 返回默认的上下移动表
func NewMovementTable() *MovementTable {
	return &MovementTable{
		bindings: []MovementBinding{
			{Symbol: types.InputUp, Delta: types.Vector{X: 0, Y: -1}},
			{Symbol: types.InputDown, Delta: types.Vector{X: 0, Y: +1}},
		},
	}
}

// Bindings 返回映射表的副本
func (t *MovementTable) Bindings() []MovementBinding {
	return append([]MovementBinding(nil), t.bindings...)
}
