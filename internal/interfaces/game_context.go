// internal/interfaces/game_context.go
package interfaces

import "go-shooting-gallery/internal/input"

// SessionContext is what systems may ask of the running session.
type SessionContext interface {
	// Defeat ends active play at the end of the current tick.
	Defeat(reason string)
}

// Input answers key queries for the current frame.
type Input interface {
	Pressed(action input.Action) bool
	JustReleased(action input.Action) bool
}

// Viewport reports the current play-field size in world units.
type Viewport interface {
	Size() (width, height float64)
}

// RandomSource yields numbers in [0.0, 1.0).
type RandomSource interface {
	Float64() float64
}
