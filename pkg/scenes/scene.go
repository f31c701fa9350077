package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// Returning ebiten.Termination ends the game loop cleanly.
	Update() error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
