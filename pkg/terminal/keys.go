// Package terminal 基于 tcell 的终端前端
//
// 提供 game.Run 需要的三个协作方：按键输入（KeyPoller）、绘制（ScreenRenderer）
// 和帧率时钟（TickerClock），以及不依赖图像文件的字符图像（GlyphSpriteLoader）。
package terminal

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/types"
)

// DefaultHoldDuration 终端没有按键抬起事件，按下后在这段时间内视为持续按住
// 大于多数终端的自动重复间隔，长按时不会出现空档
const DefaultHoldDuration = 120 * time.Millisecond

// keyBinding 一个逻辑输入对应的终端按键
// Key 为 tcell.KeyRune 时按 Rune 匹配
type keyBinding struct {
	Key  tcell.Key
	Rune rune
}

func (b keyBinding) matches(ev *tcell.EventKey) bool {
	if b.Key != tcell.KeyRune {
		return ev.Key() == b.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == b.Rune
}

// 配置中的 Ebitengine 键名到 tcell 按键
var namedKeys = map[string]tcell.Key{
	"arrowup":    tcell.KeyUp,
	"arrowdown":  tcell.KeyDown,
	"arrowleft":  tcell.KeyLeft,
	"arrowright": tcell.KeyRight,
	"escape":     tcell.KeyEscape,
	"enter":      tcell.KeyEnter,
	"tab":        tcell.KeyTab,
}

func parseKeyName(name string) (keyBinding, error) {
	lower := strings.ToLower(name)
	if key, ok := namedKeys[lower]; ok {
		return keyBinding{Key: key}, nil
	}
	if lower == "space" {
		return keyBinding{Key: tcell.KeyRune, Rune: ' '}, nil
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return keyBinding{Key: tcell.KeyRune, Rune: r}, nil
	}
	return keyBinding{}, fmt.Errorf("unsupported terminal key name %q", name)
}

// KeyPoller 终端按键采样器，实现 game.InputSource
//
// 事件 goroutine 调用 HandleEvent 记录按键时间，更新 goroutine 调用 PollKeys 采样。
// 两者只通过 mu 保护的按键时间表交互。Ctrl-C 总是视为退出。
type KeyPoller struct {
	bindings [types.InputSymbolCount]keyBinding
	hold     time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastSeen [types.InputSymbolCount]time.Time
	quit     bool
}

// NewKeyPoller 按配置的键名创建采样器
func NewKeyPoller(keys config.KeyBindings, hold time.Duration) (*KeyPoller, error) {
	p := &KeyPoller{hold: hold, now: time.Now}

	names := [types.InputSymbolCount]string{
		types.InputUp:   keys.Up,
		types.InputDown: keys.Down,
		types.InputJump: keys.Jump,
		types.InputFire: keys.Fire,
		types.InputQuit: keys.Quit,
	}
	for symbol, name := range names {
		b, err := parseKeyName(name)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", types.InputSymbol(symbol), err)
		}
		p.bindings[symbol] = b
	}
	return p, nil
}

// HandleEvent 记录一个 tcell 事件，非按键事件忽略
func (p *KeyPoller) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if key.Key() == tcell.KeyCtrlC {
		p.quit = true
		return
	}

	for symbol, b := range p.bindings {
		if b.matches(key) {
			if types.InputSymbol(symbol) == types.InputQuit {
				p.quit = true
			}
			p.lastSeen[symbol] = p.now()
		}
	}
}

// Listen 持续读取屏幕事件，直到屏幕关闭（PollEvent 返回 nil）
// 应在独立 goroutine 中运行
func (p *KeyPoller) Listen(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		p.HandleEvent(ev)
	}
}

// PollKeys 实现 game.InputSource
// 最近 hold 时间内出现过的按键视为按下；退出一旦出现就保持
func (p *KeyPoller) PollKeys() types.KeyState {
	p.mu.Lock()
	defer p.mu.Unlock()

	var state types.KeyState
	now := p.now()
	for symbol, seen := range p.lastSeen {
		if !seen.IsZero() && now.Sub(seen) < p.hold {
			state[symbol] = true
		}
	}
	if p.quit {
		state = state.With(types.InputQuit)
	}
	return state
}
