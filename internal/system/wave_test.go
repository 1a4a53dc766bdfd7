package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-shooting-gallery/internal/event"
)

func TestRoundSystem_EdgeTriggered(t *testing.T) {
	w := newWorld()
	s := NewRoundSystem(w.ecs, w.bus, w.disp)

	assert.True(t, s.Update(), "empty board at start")
	assert.Equal(t, 1, w.bus.RoundOver.Len())
	w.bus.Reset()

	for i := 0; i < 3; i++ {
		assert.False(t, s.Update())
	}
	assert.Zero(t, w.bus.RoundOver.Len())
	assert.Equal(t, 1, w.count(event.RoundOver))

	e := w.enemy(0, 0)
	assert.False(t, s.Update())
	assert.True(t, s.InProgress())

	w.ecs.Despawn(e)
	w.ecs.Flush()
	assert.True(t, s.Update())
	assert.Equal(t, 2, w.count(event.RoundOver))
}

func TestRoundSystem_Reset(t *testing.T) {
	w := newWorld()
	s := NewRoundSystem(w.ecs, w.bus, w.disp)
	s.Update()
	assert.False(t, s.InProgress())

	s.Reset()
	assert.True(t, s.InProgress())
	assert.True(t, s.Update())
}
