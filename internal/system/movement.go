// internal/system/movement.go
package system

import (
	"math"

	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/interfaces"
)

// formationControl is the lock-step state shared by the whole formation.
type formationControl struct {
	dir          float64
	justSwitched bool
	accumulator  float64
}

func newFormationControl() formationControl {
	return formationControl{dir: 1}
}

// EnemyMovementSystem moves the formation in lock step on a fixed timestep,
// independent of the frame rate.
type EnemyMovementSystem struct {
	ecs     *entity.ECS
	session interfaces.SessionContext
	tuning  config.FormationTuning
	control formationControl
}

func NewEnemyMovementSystem(ecs *entity.ECS, session interfaces.SessionContext, tuning *config.Tuning) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		ecs:     ecs,
		session: session,
		tuning:  tuning.Formation,
		control: newFormationControl(),
	}
}

// Direction is +1 while the formation moves right and -1 while it moves left.
func (s *EnemyMovementSystem) Direction() float64 {
	return s.control.dir
}

// Reset forgets direction and pending time.
func (s *EnemyMovementSystem) Reset() {
	s.control = newFormationControl()
}

// Update accumulates time and runs one formation step per elapsed timestep.
// It returns false when the formation reached the ground and the session was defeated.
func (s *EnemyMovementSystem) Update(deltaTime float64, viewport interfaces.Viewport) bool {
	s.control.accumulator += deltaTime
	for s.control.accumulator >= s.tuning.Timestep {
		s.control.accumulator -= s.tuning.Timestep
		if !s.Step(viewport) {
			s.control.accumulator = 0
			return false
		}
	}
	return true
}

// Step runs one formation step: sideways, or down right after a direction switch.
func (s *EnemyMovementSystem) Step(viewport interfaces.Viewport) bool {
	w, h := viewport.Size()
	ids := entity.SortedIDs(s.ecs.Enemies)

	if !s.control.justSwitched {
		edge := s.tuning.EdgeFraction * w * 0.5
		step := s.control.dir * s.tuning.StepX
		switchDir := false

		for _, id := range ids {
			pos, ok := s.ecs.Positions[id]
			if !ok {
				continue
			}
			pos.X += step
			if !switchDir && math.Abs(pos.X+step) >= edge {
				switchDir = true
			}
		}
		if switchDir {
			s.control.justSwitched = true
			s.control.dir = -s.control.dir
		}
		return true
	}

	s.control.justSwitched = false
	ground := -s.tuning.LossFraction * h * 0.5
	for _, id := range ids {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		pos.Y -= s.tuning.StepY
		if pos.Y <= ground {
			s.session.Defeat("enemies reached the ground")
			return false
		}
	}
	return true
}
