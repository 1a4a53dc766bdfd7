// internal/system/shooting.go
package system

import (
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
)

// EnemyShootingSystem runs the shoot cycles of enemies that are allowed to fire.
type EnemyShootingSystem struct {
	ecs        *entity.ECS
	bus        *event.Bus
	tuning     config.EnemyTuning
	bulletSize float64
}

func NewEnemyShootingSystem(ecs *entity.ECS, bus *event.Bus, tuning *config.Tuning) *EnemyShootingSystem {
	return &EnemyShootingSystem{
		ecs:        ecs,
		bus:        bus,
		tuning:     tuning.Enemy,
		bulletSize: tuning.Bullet.Size,
	}
}

// Update counts down every free enemy's timer and requests a bullet when it runs out.
// Enemies holding fire keep their timer frozen.
func (s *EnemyShootingSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]
		if e.HoldFire {
			continue
		}
		cycle, ok := s.ecs.ShootCycles[id]
		if !ok {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		cycle.Timer -= deltaTime
		if cycle.Timer > 0 {
			continue
		}
		cycle.Timer = cycle.Reset

		s.bus.Spawns.Push(event.SpawnBullet{
			VX:      0,
			VY:      -s.tuning.BulletSpeed,
			X:       pos.X,
			Y:       pos.Y - s.tuning.MuzzleOffset,
			Color:   config.EnemyBulletColor,
			Size:    s.bulletSize,
			Hostile: true,
		})
	}
}
