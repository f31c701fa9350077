package scenes

import (
	"fmt"

	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyMap 逻辑输入符号到 Ebitengine 按键的映射
type KeyMap [types.InputSymbolCount]ebiten.Key

// ParseKeyMap 根据配置中的键名构建按键映射
// 键名使用 Ebitengine 的命名（如 "ArrowUp"、"Space"、"F"），大小写不敏感
func ParseKeyMap(bindings config.KeyBindings) (KeyMap, error) {
	var km KeyMap

	names := [types.InputSymbolCount]string{
		types.InputUp:   bindings.Up,
		types.InputDown: bindings.Down,
		types.InputJump: bindings.Jump,
		types.InputFire: bindings.Fire,
		types.InputQuit: bindings.Quit,
	}

	for symbol, name := range names {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return km, fmt.Errorf("invalid key name %q for %v: %w", name, types.InputSymbol(symbol), err)
		}
		km[symbol] = key
	}

	return km, nil
}

// PollKeyState 读取当前帧的按键状态
// 只做按值采样，不保存任何边沿检测状态
func PollKeyState(km KeyMap) types.KeyState {
	var state types.KeyState
	for symbol, key := range km {
		if ebiten.IsKeyPressed(key) {
			state = state.With(types.InputSymbol(symbol))
		}
	}
	return state
}
