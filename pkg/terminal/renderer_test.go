package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/game"
	"github.com/gonewx/kokaton/pkg/types"
	"github.com/gonewx/kokaton/pkg/utils"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCellRect(t *testing.T) {
	tests := []struct {
		name string
		rect utils.Rect
		want Cells
	}{
		{"整屏", utils.Rect{X: 0, Y: 0, Width: 800, Height: 600}, Cells{0, 0, 79, 59}},
		{"地面带", utils.Rect{X: 0, Y: 400, Width: 800, Height: 200}, Cells{0, 40, 79, 59}},
		{"小于一格", utils.Rect{X: 12, Y: 12, Width: 2, Height: 2}, Cells{1, 1, 1, 1}},
		{"左侧越界被裁剪", utils.Rect{X: -30, Y: 0, Width: 40, Height: 10}, Cells{0, 0, 0, 0}},
		{"右侧越界被裁剪", utils.Rect{X: 790, Y: 0, Width: 40, Height: 10}, Cells{79, 0, 79, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellRect(tt.rect, 80, 60); got != tt.want {
				t.Errorf("CellRect(%+v) = %+v, want %+v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestScreenRendererPresent(t *testing.T) {
	screen := newTestScreen(t, 80, 60)
	renderer := NewScreenRenderer(screen)

	loader := NewGlyphSpriteLoader()
	bird, _ := loader.LoadSprite(types.SpriteKey{Name: "3", FlipX: true})

	cmds := []game.DrawCommand{
		{Ground: true, Rect: utils.Rect{X: 0, Y: 400, Width: 800, Height: 200}},
		{Sprite: bird, Rect: utils.NewRectCentered(200, 375, 56, 48)},
	}
	if err := renderer.Present(cmds); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	if r, _, _, _ := screen.GetContent(0, 59); r != '▓' {
		t.Errorf("ground cell = %q, want '▓'", r)
	}
	if r, _, _, _ := screen.GetContent(20, 37); r != '>' {
		t.Errorf("player cell = %q, want '>'", r)
	}
	if r, _, _, _ := screen.GetContent(70, 10); r != ' ' {
		t.Errorf("empty cell = %q, want blank", r)
	}
}

// TestRunWithTerminalCollaborators 用模拟屏幕跑完整主循环
func TestRunWithTerminalCollaborators(t *testing.T) {
	screen := newTestScreen(t, 80, 60)
	world, err := game.NewWorld(NewGlyphSpriteLoader(), config.DefaultTuningConfig())
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	poller, _ := newTestPoller(t)
	clock := NewTickerClock(1000)
	defer clock.Stop()

	input := &quitAfter{poller: poller, frames: 5}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := game.Run(ctx, world, input, NewScreenRenderer(screen), clock); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if world.Tick() != 5 {
		t.Errorf("tick = %d, want 5", world.Tick())
	}
}

// quitAfter 在指定帧数后注入退出键
type quitAfter struct {
	poller *KeyPoller
	frames int
	polls  int
}

func (q *quitAfter) PollKeys() types.KeyState {
	q.polls++
	if q.polls > q.frames {
		q.poller.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}
	return q.poller.PollKeys()
}

func TestGlyphSpriteLoader(t *testing.T) {
	loader := NewGlyphSpriteLoader()

	left, err := loader.LoadSprite(types.SpriteKey{Name: "3"})
	if err != nil {
		t.Fatal(err)
	}
	right, _ := loader.LoadSprite(types.SpriteKey{Name: "3", FlipX: true})
	hyper, _ := loader.LoadSprite(types.SpriteKey{Name: "3", FlipX: true, Hyper: true})

	if left.(*Glyph).Rune != '<' || right.(*Glyph).Rune != '>' {
		t.Error("flip should select the right-facing glyph")
	}
	if hyper.(*Glyph).Style == right.(*Glyph).Style {
		t.Error("hyper glyph should use a different style")
	}
	if w, h := left.Size(); w != 56 || h != 48 {
		t.Errorf("size = %dx%d, want 56x48", w, h)
	}

	if _, err := loader.LoadSprite(types.SpriteKey{Name: "unknown"}); err == nil {
		t.Error("unknown image should fail")
	}
}

func TestTickerClock(t *testing.T) {
	clock := NewTickerClock(200)
	defer clock.Stop()

	start := time.Now()
	for i := 0; i < 3; i++ {
		clock.Tick()
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("3 ticks at 200 TPS took %v, expected at least 10ms", elapsed)
	}
}
