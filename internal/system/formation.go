// internal/system/formation.go
package system

import (
	"log"

	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/interfaces"
	"go-shooting-gallery/internal/types"
)

// FormationSystem builds enemy waves and tears them down.
type FormationSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             interfaces.RandomSource
	layout          config.FormationTuning
	fire            config.EnemyTuning
}

func NewFormationSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng interfaces.RandomSource, tuning *config.Tuning) *FormationSystem {
	return &FormationSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		layout:          tuning.Formation,
		fire:            tuning.Enemy,
	}
}

func (s *FormationSystem) shootCycle() *component.ShootCycle {
	return &component.ShootCycle{
		Timer: s.rng.Float64() * s.fire.TimerMax,
		Reset: s.rng.Float64()*s.fire.ResetSpan + s.fire.ResetMin,
	}
}

// Spawn places a wave centered on the formation anchor and makes the next one bigger.
//
// Rows are laid down starting from the highest row index; inside a row, columns go left
// to right. rowAbove remembers the last enemy placed in each column: when a column gets
// a new enemy, the remembered one records it as its Above and holds fire, so only the
// last enemy placed in a column (the one nearest the player) starts out shooting.
func (s *FormationSystem) Spawn(f *component.Formation) []types.EntityID {
	log.Printf("Round %d!", f.Round)

	size := s.layout.EnemySize
	spacing := s.layout.Spacing
	width := size*float64(f.Cols) + spacing*float64(f.Cols-1)
	height := size*float64(f.Rows) + spacing*float64(f.Rows-1)
	startX := f.CenterX - width*0.5
	startY := f.CenterY - height*0.5

	spawned := make([]types.EntityID, 0, f.Rows*f.Cols)
	rowAbove := make([]types.EntityID, 0, f.Cols)

	for i := 0; i < f.Rows; i++ {
		row := float64(f.Rows - i - 1)
		for k := 0; k < f.Cols; k++ {
			id := s.ecs.NewEntity()
			s.ecs.Positions[id] = &component.Position{
				X: startX + float64(k)*(size+spacing),
				Y: startY + row*(size+spacing),
			}
			s.ecs.Enemies[id] = &component.Enemy{}
			s.ecs.Colliders[id] = component.NewCollider(size, size)
			s.ecs.ShootCycles[id] = s.shootCycle()
			s.ecs.Renderables[id] = &component.Renderable{Color: config.EnemyColor, Width: size, Height: size}

			if k < len(rowAbove) {
				prev := rowAbove[k]
				if above, ok := s.ecs.Enemy(prev); ok {
					above.Above = id
					above.HoldFire = true
				}
				s.ecs.Enemies[id].Behind = prev
				rowAbove[k] = id
			} else {
				rowAbove = append(rowAbove, id)
			}
			spawned = append(spawned, id)
		}
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundStarted, Data: event.RoundInfo{
		Round:   f.Round,
		Rows:    f.Rows,
		Cols:    f.Cols,
		Enemies: len(spawned),
	}})

	f.Advance()
	return spawned
}

// Clear removes every enemy.
func (s *FormationSystem) Clear() {
	for id := range s.ecs.Enemies {
		s.ecs.Despawn(id)
	}
}
