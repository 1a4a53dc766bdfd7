package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestScript_PressedAndReleased(t *testing.T) {
	s := NewScript(Hold(Fire), Hold(Fire, MoveLeft), Hold())

	assert.True(t, s.Pressed(Fire))
	assert.False(t, s.JustReleased(Fire))

	s.Advance()
	assert.True(t, s.Pressed(MoveLeft))
	assert.False(t, s.JustReleased(Fire))

	s.Advance()
	assert.False(t, s.Pressed(Fire))
	assert.True(t, s.JustReleased(Fire))
	assert.True(t, s.JustReleased(MoveLeft))

	s.Advance()
	assert.False(t, s.JustReleased(Fire), "release is reported for one frame only")
}

func TestScript_LoopAndHoldLast(t *testing.T) {
	looped := &Script{Frames: []Frame{Hold(MoveLeft), Hold(MoveRight)}, Loop: true}
	looped.Advance()
	looped.Advance()
	assert.True(t, looped.Pressed(MoveLeft))

	held := NewScript(Repeat(Hold(Fire), 2)...)
	for i := 0; i < 5; i++ {
		held.Advance()
	}
	assert.True(t, held.Pressed(Fire))

	empty := NewScript()
	assert.False(t, empty.Pressed(Fire))
}

func TestTerminal_HoldTimeout(t *testing.T) {
	now := time.Unix(100, 0)
	term := NewTerminal(100 * time.Millisecond)
	term.now = func() time.Time { return now }

	term.HandleKey(tcell.KeyLeft, 0)
	term.Update()
	assert.True(t, term.Pressed(MoveLeft))
	assert.False(t, term.Pressed(MoveRight))

	now = now.Add(50 * time.Millisecond)
	term.Update()
	assert.True(t, term.Pressed(MoveLeft))

	now = now.Add(100 * time.Millisecond)
	term.Update()
	assert.False(t, term.Pressed(MoveLeft))
	assert.True(t, term.JustReleased(MoveLeft))

	term.Update()
	assert.False(t, term.JustReleased(MoveLeft))
}

func TestTerminal_SpaceIsFireAndStart(t *testing.T) {
	now := time.Unix(100, 0)
	term := NewTerminal(0)
	term.now = func() time.Time { return now }
	assert.Equal(t, DefaultHoldTimeout, term.HoldTimeout)

	term.HandleKey(tcell.KeyRune, ' ')
	term.HandleKey(tcell.KeyRune, 'x')
	term.Update()
	assert.True(t, term.Pressed(Fire))
	assert.True(t, term.Pressed(Start))

	now = now.Add(time.Second)
	term.Update()
	assert.True(t, term.JustReleased(Start))

	term.Reset()
	assert.False(t, term.JustReleased(Start))
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "fire", Fire.String())
	assert.Equal(t, "unknown", Action(99).String())
}
