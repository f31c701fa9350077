// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// InputSymbol 核心逻辑识别的逻辑输入符号
type InputSymbol int

const (
	// InputUp 向上移动
	InputUp InputSymbol = iota
	// InputDown 向下移动
	InputDown
	// InputJump 跳跃
	InputJump
	// InputFire 发射光束
	InputFire
	// InputQuit 退出游戏
	InputQuit

	// InputSymbolCount 输入符号总数，用作 KeyState 的长度
	InputSymbolCount
)

// String 返回输入符号的字符串表示
func (s InputSymbol) String() string {
	switch s {
	case InputUp:
		return "Up"
	case InputDown:
		return "Down"
	case InputJump:
		return "Jump"
	case InputFire:
		return "Fire"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState 一帧的按键状态向量，以 InputSymbol 为下标
// 由输入协作方按值提供，核心逻辑只读
type KeyState [InputSymbolCount]bool

// Pressed 返回指定符号本帧是否处于按下状态
func (k KeyState) Pressed(s InputSymbol) bool {
	if s < 0 || s >= InputSymbolCount {
		return false
	}
	return k[s]
}

// With 返回一个在原状态基础上按下指定符号的副本
// 主要用于测试与终端输入
func (k KeyState) With(symbols ...InputSymbol) KeyState {
	for _, s := range symbols {
		if s >= 0 && s < InputSymbolCount {
			k[s] = true
		}
	}
	return k
}
