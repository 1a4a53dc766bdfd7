// internal/state/menu_state.go
package state

import (
	game "go-shooting-gallery/internal/app"
	"go-shooting-gallery/internal/input"
	"go-shooting-gallery/internal/interfaces"
)

// MenuPrompt is shown while waiting for the player.
const MenuPrompt = "Press `Space` to start"

// MenuState waits for the start key.
type MenuState struct {
	sm    *StateMachine
	game  *game.Game
	input interfaces.Input
}

func NewMenuState(sm *StateMachine, g *game.Game, in interfaces.Input) *MenuState {
	return &MenuState{sm: sm, game: g, input: in}
}

func (m *MenuState) Enter() {}

// Update starts a session once the start key is released.
func (m *MenuState) Update(deltaTime float64) {
	if m.input.JustReleased(input.Start) {
		m.sm.SetState(NewPlayState(m.sm, m.game, m.input))
	}
}

func (m *MenuState) Exit() {}

// Game returns the session this menu starts, so drivers can show the last result.
func (m *MenuState) Game() *game.Game {
	return m.game
}
