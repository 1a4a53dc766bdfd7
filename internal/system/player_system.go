// internal/system/player_system.go
package system

import (
	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/input"
	"go-shooting-gallery/internal/interfaces"
	"go-shooting-gallery/internal/types"
	"go-shooting-gallery/internal/utils"
)

// PlayerSystem moves the ship, fires its gun and ends the session when it is hit.
type PlayerSystem struct {
	ecs      *entity.ECS
	bus      *event.Bus
	session  interfaces.SessionContext
	tuning   config.PlayerTuning
	bullet   config.BulletTuning
	playerID types.EntityID
}

func NewPlayerSystem(ecs *entity.ECS, bus *event.Bus, session interfaces.SessionContext, tuning *config.Tuning) *PlayerSystem {
	return &PlayerSystem{
		ecs:     ecs,
		bus:     bus,
		session: session,
		tuning:  tuning.Player,
		bullet:  tuning.Bullet,
	}
}

// PlayerID is the current ship, or NoEntity between sessions.
func (s *PlayerSystem) PlayerID() types.EntityID {
	return s.playerID
}

// Spawn places a new ship at the start position.
func (s *PlayerSystem) Spawn() types.EntityID {
	t := s.tuning
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: t.StartX, Y: t.StartY}
	s.ecs.Colliders[id] = component.NewCollider(t.Size, t.Size)
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Width: t.Size, Height: t.Size}
	s.ecs.Players[id] = &component.Player{
		MoveSpeed:      t.Speed,
		MinPos:         component.Vec2{X: t.MinPos[0], Y: t.MinPos[1]},
		MaxPos:         component.Vec2{X: t.MaxPos[0], Y: t.MaxPos[1]},
		BetweenShots:   t.ShotCadence,
		Muzzle:         component.Vec2{X: 0, Y: t.MuzzleY},
		BulletVelocity: component.Vec2{X: 0, Y: t.BulletSpeed},
		BulletSize:     s.bullet.Size,
		BulletColor:    config.PlayerBulletColor,
	}
	s.playerID = id
	return id
}

// Update applies one frame of input to every ship.
func (s *PlayerSystem) Update(deltaTime float64, in interfaces.Input, viewport interfaces.Viewport) {
	w, h := viewport.Size()

	for _, id := range entity.SortedIDs(s.ecs.Players) {
		p := s.ecs.Players[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		dir := 0.0
		if in.Pressed(input.MoveLeft) {
			dir--
		}
		if in.Pressed(input.MoveRight) {
			dir++
		}
		pos.X += dir * p.MoveSpeed * deltaTime

		// Limits are recomputed each frame so they follow the window.
		pos.X = utils.Clamp(pos.X, p.MinPos.X*w, p.MaxPos.X*w)
		pos.Y = utils.Clamp(pos.Y, p.MinPos.Y*h, p.MaxPos.Y*h)

		if p.ShootTimer > 0 {
			p.ShootTimer -= deltaTime
			continue
		}
		if in.Pressed(input.Fire) {
			p.ShootTimer = p.BetweenShots
			muzzle := pos.XY().Add(p.Muzzle)
			s.bus.Spawns.Push(event.SpawnBullet{
				VX:    p.BulletVelocity.X,
				VY:    p.BulletVelocity.Y,
				X:     muzzle.X,
				Y:     muzzle.Y,
				Color: p.BulletColor,
				Size:  p.BulletSize,
			})
		}
	}
}

// OnCollisions defeats the session when any pair involves a ship.
func (s *PlayerSystem) OnCollisions() {
	for _, c := range s.bus.Collisions.Items() {
		if s.ecs.IsPlayer(c.A) || s.ecs.IsPlayer(c.B) {
			s.session.Defeat("player hit")
			return
		}
	}
}

// Clear removes the ship.
func (s *PlayerSystem) Clear() {
	for id := range s.ecs.Players {
		s.ecs.Despawn(id)
	}
	s.playerID = types.NoEntity
}
