// internal/system/wave.go
package system

import (
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
)

// RoundSystem notices the moment a wave runs out of enemies.
type RoundSystem struct {
	ecs             *entity.ECS
	bus             *event.Bus
	eventDispatcher *event.Dispatcher
	inProgress      bool
}

func NewRoundSystem(ecs *entity.ECS, bus *event.Bus, eventDispatcher *event.Dispatcher) *RoundSystem {
	return &RoundSystem{
		ecs:             ecs,
		bus:             bus,
		eventDispatcher: eventDispatcher,
		inProgress:      true,
	}
}

// InProgress reports whether the current wave still had enemies at the last check.
func (s *RoundSystem) InProgress() bool {
	return s.inProgress
}

// Update emits RoundOver once when the enemy population becomes empty and re-arms
// as soon as enemies exist again. It returns true on the tick it emitted.
func (s *RoundSystem) Update() bool {
	hasEnemies := len(s.ecs.Enemies) > 0

	if s.inProgress && !hasEnemies {
		s.inProgress = false
		s.bus.RoundOver.Push(event.RoundOverSignal{})
		s.eventDispatcher.Dispatch(event.Event{Type: event.RoundOver})
		return true
	}
	if !s.inProgress && hasEnemies {
		s.inProgress = true
	}
	return false
}

// Reset arms the detector for a fresh session, whose empty board starts the first wave.
func (s *RoundSystem) Reset() {
	s.inProgress = true
}
