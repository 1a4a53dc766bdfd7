package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyMovement_StepsSidewaysThenDown(t *testing.T) {
	w := newWorld()
	e := w.enemy(0, 50)
	s := NewEnemyMovementSystem(w.ecs, w.session, w.tuning)
	vp := viewport{w: 100, h: 1000}

	require.True(t, s.Step(vp))
	assert.InDelta(t, 10, w.ecs.Positions[e].X, 1e-9)
	assert.Equal(t, -1.0, s.Direction(), "10+10 reaches the edge at 20")

	require.True(t, s.Step(vp))
	assert.InDelta(t, 10, w.ecs.Positions[e].X, 1e-9)
	assert.InDelta(t, 30, w.ecs.Positions[e].Y, 1e-9)

	require.True(t, s.Step(vp))
	assert.InDelta(t, 0, w.ecs.Positions[e].X, 1e-9)
	assert.Equal(t, -1.0, s.Direction())
}

func TestEnemyMovement_FixedTimestep(t *testing.T) {
	w := newWorld()
	e := w.enemy(0, 0)
	s := NewEnemyMovementSystem(w.ecs, w.session, w.tuning)
	vp := viewport{w: 10000, h: 1000}

	s.Update(0.1, vp)
	assert.InDelta(t, 0, w.ecs.Positions[e].X, 1e-9)

	s.Update(0.15, vp)
	assert.InDelta(t, 10, w.ecs.Positions[e].X, 1e-9)

	s.Update(0.5, vp)
	assert.InDelta(t, 30, w.ecs.Positions[e].X, 1e-9)
}

func TestEnemyMovement_FormationMovesTogether(t *testing.T) {
	w := newWorld()
	a := w.enemy(-5, 0)
	b := w.enemy(15, 0)
	s := NewEnemyMovementSystem(w.ecs, w.session, w.tuning)

	s.Step(viewport{w: 100, h: 1000})
	assert.InDelta(t, 5, w.ecs.Positions[a].X, 1e-9)
	assert.InDelta(t, 25, w.ecs.Positions[b].X, 1e-9)
	assert.Equal(t, -1.0, s.Direction())
}

func TestEnemyMovement_ReachingGroundDefeats(t *testing.T) {
	w := newWorld()
	low := w.enemy(15, -19)
	high := w.enemy(15, 100)
	s := NewEnemyMovementSystem(w.ecs, w.session, w.tuning)
	vp := viewport{w: 100, h: 100}

	require.True(t, s.Update(0.2, vp))
	assert.Empty(t, w.session.reasons)

	assert.False(t, s.Update(0.4, vp))
	assert.Equal(t, []string{"enemies reached the ground"}, w.session.reasons)
	assert.InDelta(t, -39, w.ecs.Positions[low].Y, 1e-9)
	assert.InDelta(t, 100, w.ecs.Positions[high].Y, 1e-9, "movement stops at the defeat")
}

func TestEnemyMovement_Reset(t *testing.T) {
	w := newWorld()
	w.enemy(15, 0)
	s := NewEnemyMovementSystem(w.ecs, w.session, w.tuning)
	s.Step(viewport{w: 100, h: 1000})
	require.Equal(t, -1.0, s.Direction())

	s.Reset()
	assert.Equal(t, 1.0, s.Direction())
}
