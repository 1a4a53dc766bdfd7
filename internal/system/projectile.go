// internal/system/projectile.go
package system

import (
	"math"

	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/interfaces"
	"go-shooting-gallery/internal/types"
)

// ProjectileSystem spawns, moves and retires bullets.
type ProjectileSystem struct {
	ecs             *entity.ECS
	bus             *event.Bus
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, bus *event.Bus, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		bus:             bus,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn creates a bullet. Rate limiting is up to whoever asks.
func (s *ProjectileSystem) Spawn(req event.SpawnBullet) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: req.X, Y: req.Y, Z: config.BulletZ}
	s.ecs.Bullets[id] = &component.Bullet{VX: req.VX, VY: req.VY}
	s.ecs.Colliders[id] = component.NewCollider(req.Size, req.Size)
	s.ecs.Renderables[id] = &component.Renderable{Color: req.Color, Width: req.Size, Height: req.Size}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: req})
	return id
}

// SpawnRequested turns this tick's spawn requests into bullets.
func (s *ProjectileSystem) SpawnRequested() int {
	for _, req := range s.bus.Spawns.Items() {
		s.Spawn(req)
	}
	return s.bus.Spawns.Len()
}

// Update moves every bullet and retires the ones that left the play field.
func (s *ProjectileSystem) Update(deltaTime float64, viewport interfaces.Viewport) {
	w, h := viewport.Size()
	halfW, halfH := w*0.5, h*0.5

	for id, b := range s.ecs.Bullets {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.Despawn(id)
			continue
		}
		pos.X += b.VX * deltaTime
		pos.Y += b.VY * deltaTime

		if math.Abs(pos.X) > halfW || math.Abs(pos.Y) > halfH {
			s.ecs.Despawn(id)
		}
	}
}

// OnCollisions retires the bullet side of every bullet-vs-something pair.
// Two bullets hitting each other both survive.
func (s *ProjectileSystem) OnCollisions() {
	for _, c := range s.bus.Collisions.Items() {
		aBullet := s.ecs.IsBullet(c.A)
		bBullet := s.ecs.IsBullet(c.B)

		if aBullet && !bBullet {
			s.ecs.Despawn(c.A)
		} else if bBullet && !aBullet {
			s.ecs.Despawn(c.B)
		}
	}
}

// OnRoundOver clears the board between waves.
func (s *ProjectileSystem) OnRoundOver() {
	if s.bus.RoundOver.Len() == 0 {
		return
	}
	s.Clear()
}

// Clear retires every bullet.
func (s *ProjectileSystem) Clear() {
	for id := range s.ecs.Bullets {
		s.ecs.Despawn(id)
	}
}
