package scenes

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	err          error
}

func (m *MockScene) Update() error {
	m.updateCalled = true
	return m.err
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerNoScene verifies Update and Draw are no-ops without a scene.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Update(); err != nil {
		t.Errorf("Update without scene returned %v", err)
	}
	sm.Draw(nil)
}

// TestSceneManagerDelegates verifies that Update and Draw reach the current scene.
func TestSceneManagerDelegates(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Fatal("SwitchTo did not set the current scene correctly")
	}

	if err := sm.Update(); err != nil {
		t.Fatal(err)
	}
	sm.Draw(nil)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerPropagatesTermination verifies the scene's error reaches ebiten.
func TestSceneManagerPropagatesTermination(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&MockScene{err: ebiten.Termination})

	if err := sm.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected ebiten.Termination, got %v", err)
	}
}
