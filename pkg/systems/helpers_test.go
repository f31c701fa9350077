package systems

import (
	"testing"

	"github.com/gonewx/kokaton/pkg/components"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/ecs"
	"github.com/gonewx/kokaton/pkg/entities"
	"github.com/gonewx/kokaton/pkg/types"
	"github.com/gonewx/kokaton/pkg/utils"
)

// testFixture 单个玩家的最小测试环境
type testFixture struct {
	em       *ecs.EntityManager
	cfg      *config.TuningConfig
	loader   *entities.StubSpriteLoader
	playerID ecs.EntityID
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	em := ecs.NewEntityManager()
	cfg := config.DefaultTuningConfig()
	loader := entities.NewStubSpriteLoader()

	playerID, err := entities.NewPlayerEntity(em, loader, cfg)
	if err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}

	return &testFixture{em: em, cfg: cfg, loader: loader, playerID: playerID}
}

func (f *testFixture) playerRect() *utils.Rect {
	rect, _ := ecs.GetComponent[*components.RectComponent](f.em, f.playerID)
	return &rect.Rect
}

func (f *testFixture) player() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](f.em, f.playerID)
	return p
}

func (f *testFixture) jump() *components.JumpComponent {
	j, _ := ecs.GetComponent[*components.JumpComponent](f.em, f.playerID)
	return j
}

func (f *testFixture) hyper() *components.HyperComponent {
	h, _ := ecs.GetComponent[*components.HyperComponent](f.em, f.playerID)
	return h
}

func (f *testFixture) playerSprite() *entities.StubSprite {
	s, _ := ecs.GetComponent[*components.SpriteComponent](f.em, f.playerID)
	return s.Image.(*entities.StubSprite)
}

func (f *testFixture) newPlayerSystem() *PlayerSystem {
	return NewPlayerSystem(f.em, config.NewMovementTable(), f.cfg)
}

func (f *testFixture) countBeams() int {
	return len(ecs.GetEntitiesWith1[*components.ProjectileComponent](f.em))
}

func (f *testFixture) countStars() int {
	return len(ecs.GetEntitiesWith1[*components.CollectibleComponent](f.em))
}

func typesRight() types.Vector {
	return types.Vector{X: 1}
}
