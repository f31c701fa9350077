package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/entities"
	"github.com/gonewx/kokaton/pkg/types"
)

func TestShouldSpawnCollectible(t *testing.T) {
	oneShot := config.StarTuning{SpawnTick: 200}
	periodic := config.StarTuning{SpawnTick: 200, SpawnInterval: 150}

	tests := []struct {
		name string
		tick int
		star config.StarTuning
		want bool
	}{
		{"一次性：触发帧", 200, oneShot, true},
		{"一次性：之前", 199, oneShot, false},
		{"一次性：之后不再触发", 400, oneShot, false},
		{"周期：第 0 帧不触发", 0, periodic, false},
		{"周期：整数倍", 300, periodic, true},
		{"周期：非整数倍", 200, periodic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSpawnCollectible(tt.tick, tt.star); got != tt.want {
				t.Errorf("ShouldSpawnCollectible(%d) = %v, want %v", tt.tick, got, tt.want)
			}
		})
	}
}

func TestEdgeTracker(t *testing.T) {
	var e EdgeTracker
	sequence := []struct {
		pressed bool
		want    bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, step := range sequence {
		if got := e.Rising(step.pressed); got != step.want {
			t.Errorf("step %d: Rising(%v) = %v, want %v", i, step.pressed, got, step.want)
		}
	}
}

func TestSpawnSystemSpawnsStarOnce(t *testing.T) {
	f := newFixture(t)
	spawn := NewSpawnSystem(f.em, f.loader, f.cfg)

	for tick := 0; tick <= 2*f.cfg.Star.SpawnTick; tick++ {
		if err := spawn.Update(tick, types.KeyState{}, f.playerID); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
	}

	if f.countStars() != 1 {
		t.Errorf("expected exactly one star, got %d", f.countStars())
	}
}

// TestProjectileConcurrency 存活一束光束时再次按下发射无效，光束出界后可再次发射
func TestProjectileConcurrency(t *testing.T) {
	f := newFixture(t)
	spawn := NewSpawnSystem(f.em, f.loader, f.cfg)
	beams := NewProjectileSystem(f.em)
	fire := types.KeyState{}.With(types.InputFire)
	idle := types.KeyState{}

	tick := 1
	step := func(keys types.KeyState) {
		t.Helper()
		if err := spawn.Update(tick, keys, f.playerID); err != nil {
			t.Fatalf("spawn: %v", err)
		}
		beams.Update()
		f.em.RemoveMarkedEntities()
		tick++
	}

	step(fire)
	if f.countBeams() != 1 {
		t.Fatalf("first fire edge should create a beam, got %d", f.countBeams())
	}

	step(idle)
	step(fire)
	if f.countBeams() != 1 {
		t.Fatalf("second fire edge must not create a beam while one is alive, got %d", f.countBeams())
	}

	for i := 0; i < 200 && f.countBeams() > 0; i++ {
		step(idle)
	}
	if f.countBeams() != 0 {
		t.Fatal("beam should despawn at the screen edge")
	}

	step(fire)
	if f.countBeams() != 1 {
		t.Errorf("fire edge after despawn should succeed, got %d", f.countBeams())
	}
}

func TestHoldingFireIsASingleEdge(t *testing.T) {
	f := newFixture(t)
	f.cfg.Beam.MaxAlive = 5
	spawn := NewSpawnSystem(f.em, f.loader, f.cfg)
	fire := types.KeyState{}.With(types.InputFire)

	for tick := 1; tick <= 5; tick++ {
		if err := spawn.Update(tick, fire, f.playerID); err != nil {
			t.Fatal(err)
		}
	}
	if f.countBeams() != 1 {
		t.Errorf("holding fire should spawn once, got %d", f.countBeams())
	}
}

func TestFireRequiresCanFire(t *testing.T) {
	f := newFixture(t)
	SetCanFire(f.em, f.playerID, false)
	spawn := NewSpawnSystem(f.em, f.loader, f.cfg)

	if err := spawn.Update(1, types.KeyState{}.With(types.InputFire), f.playerID); err != nil {
		t.Fatal(err)
	}
	if f.countBeams() != 0 {
		t.Error("beam must not spawn when can-fire is off")
	}
}

func TestBeamDirectionIsHorizontalLocked(t *testing.T) {
	tests := []struct {
		name           string
		facing         types.Direction
		lastHorizontal int
		wantX          int
	}{
		{"朝右", types.DirRight, 1, 1},
		{"朝左上", types.DirUpLeft, -1, -1},
		{"朝上但上次朝左", types.DirUp, -1, -1},
		{"朝下且上次朝右", types.DirDown, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.player().Facing = tt.facing
			f.player().LastHorizontal = tt.lastHorizontal
			spawn := NewSpawnSystem(f.em, f.loader, f.cfg)

			fired, err := spawn.tryFire(f.playerID)
			if err != nil || !fired {
				t.Fatalf("tryFire = %v, %v", fired, err)
			}

			ids := ecs.GetEntitiesWith1[*components.ProjectileComponent](f.em)
			beam, _ := ecs.GetComponent[*components.ProjectileComponent](f.em, ids[0])
			if beam.Direction != (types.Vector{X: tt.wantX}) {
				t.Errorf("direction = %+v, want (%d, 0)", beam.Direction, tt.wantX)
			}
		})
	}
}

func TestSpawnSystemPropagatesAssetErrors(t *testing.T) {
	f := newFixture(t)
	f.loader.Missing[f.cfg.Star.Image] = true
	spawn := NewSpawnSystem(f.em, f.loader, f.cfg)

	err := spawn.Update(f.cfg.Star.SpawnTick, types.KeyState{}, f.playerID)
	if !errors.Is(err, entities.ErrAssetResolution) {
		t.Errorf("expected ErrAssetResolution, got %v", err)
	}
}
