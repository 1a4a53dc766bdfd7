package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/input"
	"go-shooting-gallery/internal/types"
)

func TestPlayerSpawn(t *testing.T) {
	w := newWorld()
	s := NewPlayerSystem(w.ecs, w.bus, w.session, w.tuning)

	id := s.Spawn()
	require.True(t, w.ecs.IsPlayer(id))
	assert.Equal(t, id, s.PlayerID())
	assert.Equal(t, 0.0, w.ecs.Positions[id].X)
	assert.Equal(t, -300.0, w.ecs.Positions[id].Y)
	assert.Equal(t, 10.0, w.ecs.Colliders[id].HalfW)
	assert.Equal(t, 120.0, w.ecs.Players[id].MoveSpeed)
}

func TestPlayerUpdate_MovesAndClamps(t *testing.T) {
	w := newWorld()
	s := NewPlayerSystem(w.ecs, w.bus, w.session, w.tuning)
	id := s.Spawn()
	vp := viewport{w: 800, h: 600}
	right := input.NewScript(input.Hold(input.MoveRight))

	s.Update(0.5, right, vp)
	pos := w.ecs.Positions[id]
	assert.InDelta(t, 60, pos.X, 1e-9)
	assert.InDelta(t, -240, pos.Y, 1e-9, "y is pulled into the band")

	for i := 0; i < 100; i++ {
		s.Update(0.5, right, vp)
	}
	assert.InDelta(t, 320, pos.X, 1e-9)

	left := input.NewScript(input.Hold(input.MoveLeft))
	for i := 0; i < 100; i++ {
		s.Update(0.5, left, vp)
	}
	assert.InDelta(t, -320, pos.X, 1e-9)

	both := input.NewScript(input.Hold(input.MoveLeft, input.MoveRight))
	s.Update(0.5, both, vp)
	assert.InDelta(t, -320, pos.X, 1e-9)
}

func TestPlayerUpdate_BoundsFollowViewport(t *testing.T) {
	w := newWorld()
	s := NewPlayerSystem(w.ecs, w.bus, w.session, w.tuning)
	id := s.Spawn()
	w.ecs.Positions[id].X = 300

	s.Update(0.01, input.NewScript(), viewport{w: 500, h: 600})
	assert.InDelta(t, 200, w.ecs.Positions[id].X, 1e-9)
}

func TestPlayerUpdate_ShotCadence(t *testing.T) {
	w := newWorld()
	s := NewPlayerSystem(w.ecs, w.bus, w.session, w.tuning)
	id := s.Spawn()
	vp := viewport{w: 800, h: 600}
	fire := input.NewScript(input.Hold(input.Fire))

	s.Update(0.1, fire, vp)
	require.Equal(t, 1, w.bus.Spawns.Len())
	req := w.bus.Spawns.Items()[0]
	assert.InDelta(t, 0, req.X, 1e-9)
	assert.InDelta(t, -210, req.Y, 1e-9)
	assert.InDelta(t, 140, req.VY, 1e-9)
	assert.False(t, req.Hostile)
	assert.Equal(t, config.PlayerBulletColor, req.Color)
	assert.InDelta(t, 0.5, w.ecs.Players[id].ShootTimer, 1e-9)

	shots := 1
	for i := 0; i < 19; i++ {
		w.bus.Reset()
		s.Update(0.1, fire, vp)
		shots += w.bus.Spawns.Len()
	}
	assert.LessOrEqual(t, shots, 4, "at most one shot per cadence")
	assert.GreaterOrEqual(t, shots, 3)
}

func TestPlayerUpdate_NoFireNoShot(t *testing.T) {
	w := newWorld()
	s := NewPlayerSystem(w.ecs, w.bus, w.session, w.tuning)
	s.Spawn()

	s.Update(0.1, input.NewScript(), viewport{w: 800, h: 600})
	assert.Zero(t, w.bus.Spawns.Len())
}

func TestPlayerOnCollisions_Defeats(t *testing.T) {
	w := newWorld()
	s := NewPlayerSystem(w.ecs, w.bus, w.session, w.tuning)
	id := s.Spawn()
	b := w.bullet(0, -300, 0, -90)
	other := w.bullet(100, 100, 0, 1)

	w.bus.Collisions.Push(event.Collision{A: b, B: other})
	s.OnCollisions()
	assert.Empty(t, w.session.reasons)

	w.bus.Collisions.Push(event.Collision{A: b, B: id})
	s.OnCollisions()
	assert.Equal(t, []string{"player hit"}, w.session.reasons)
	assert.False(t, w.ecs.Doomed(id), "the ship stays until teardown")
}

func TestPlayerClear(t *testing.T) {
	w := newWorld()
	s := NewPlayerSystem(w.ecs, w.bus, w.session, w.tuning)
	id := s.Spawn()

	s.Clear()
	assert.True(t, w.ecs.Doomed(id))
	assert.Equal(t, types.NoEntity, s.PlayerID())
}
