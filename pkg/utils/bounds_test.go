package utils

import (
	"testing"

	"github.com/gonewx/kokaton/pkg/config"
)

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name      string
		rect      Rect
		wantHoriz bool
		wantVert  bool
	}{
		{"完全在内", Rect{X: 100, Y: 100, Width: 50, Height: 50}, true, true},
		{"贴住所有边", Rect{X: 0, Y: 0, Width: 800, Height: 400}, true, true},
		{"左越界", Rect{X: -1, Y: 100, Width: 50, Height: 50}, false, true},
		{"右越界", Rect{X: 751, Y: 100, Width: 50, Height: 50}, false, true},
		{"上越界", Rect{X: 100, Y: -0.5, Width: 50, Height: 50}, true, false},
		{"进入地面带", Rect{X: 100, Y: 351, Width: 50, Height: 50}, true, false},
		{"两个方向都越界", Rect{X: -10, Y: 390, Width: 50, Height: 50}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := CheckBounds(tt.rect)
			if h != tt.wantHoriz || v != tt.wantVert {
				t.Errorf("CheckBounds(%+v) = (%v, %v), want (%v, %v)", tt.rect, h, v, tt.wantHoriz, tt.wantVert)
			}
		})
	}
}

// TestCheckBoundsMatchesDefinition 在网格上穷举验证边界判定与定义一致
func TestCheckBoundsMatchesDefinition(t *testing.T) {
	p := config.DefaultPlayfield()
	for x := -60.0; x <= 860; x += 20 {
		for y := -60.0; y <= 460; y += 20 {
			r := Rect{X: x, Y: y, Width: 40, Height: 30}
			h, v := CheckBounds(r)

			wantH := !(r.Left() < 0 || r.Right() > p.Width)
			wantV := !(r.Top() < 0 || r.Bottom() > p.Height-p.GroundHeight)
			if h != wantH || v != wantV {
				t.Fatalf("rect %+v: got (%v, %v), want (%v, %v)", r, h, v, wantH, wantV)
			}
		}
	}
}

func TestCheckBoundsIn(t *testing.T) {
	small := config.PlayfieldBounds{Width: 100, Height: 100, GroundHeight: 20}
	h, v := CheckBoundsIn(Rect{X: 10, Y: 60, Width: 10, Height: 30}, small)
	if !h || v {
		t.Errorf("got (%v, %v), want (true, false)", h, v)
	}
	if InBounds(Rect{X: 790, Y: 10, Width: 20, Height: 20}) {
		t.Error("rect crossing the right edge must not be in bounds")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"部分重叠", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"包含", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"右边缘接触", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"下方分离", Rect{X: 0, Y: 20, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRectCentered(200, 375, 50, 40)
	if r.CenterX() != 200 || r.CenterY() != 375 {
		t.Errorf("center = (%.1f, %.1f)", r.CenterX(), r.CenterY())
	}
	r.SetCenterY(175)
	if r.CenterY() != 175 || r.Height != 40 {
		t.Errorf("SetCenterY: %+v", r)
	}
	moved := r.Moved(5, -5)
	if moved.X != r.X+5 || moved.Y != r.Y-5 {
		t.Errorf("Moved: %+v", moved)
	}
}
