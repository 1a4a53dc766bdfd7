// internal/state/play_state.go
package state

import (
	game "go-shooting-gallery/internal/app"
	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/interfaces"
)

// PlayState runs one session and returns to the menu when it ends.
type PlayState struct {
	sm    *StateMachine
	game  *game.Game
	input interfaces.Input
}

func NewPlayState(sm *StateMachine, g *game.Game, in interfaces.Input) *PlayState {
	return &PlayState{sm: sm, game: g, input: in}
}

func (p *PlayState) Enter() {
	p.game.Start()
}

func (p *PlayState) Update(deltaTime float64) {
	p.game.Update(deltaTime)
	if p.game.Phase() == component.PhaseMenu {
		p.sm.SetState(NewMenuState(p.sm, p.game, p.input))
	}
}

func (p *PlayState) Exit() {
	p.game.Stop()
}

// Game returns the running session.
func (p *PlayState) Game() *game.Game {
	return p.game
}
