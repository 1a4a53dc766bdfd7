// internal/input/terminal.go
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTimeout covers the gap before a terminal starts auto-repeating a held key.
const DefaultHoldTimeout = 550 * time.Millisecond

// Terminal turns tcell key events into held/released state. Terminals only report
// presses (and auto-repeats), so a key counts as held until HoldTimeout passes
// without another press.
type Terminal struct {
	HoldTimeout time.Duration

	lastPress [actionCount]time.Time
	held      [actionCount]bool
	released  [actionCount]bool
	now       func() time.Time
}

// NewTerminal creates a terminal input with the given hold timeout.
// A non-positive timeout falls back to DefaultHoldTimeout.
func NewTerminal(holdTimeout time.Duration) *Terminal {
	if holdTimeout <= 0 {
		holdTimeout = DefaultHoldTimeout
	}
	return &Terminal{HoldTimeout: holdTimeout, now: time.Now}
}

// actionFor maps a key to an action.
func actionFor(key tcell.Key, r rune) (Action, bool) {
	switch key {
	case tcell.KeyLeft:
		return MoveLeft, true
	case tcell.KeyRight:
		return MoveRight, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return MoveLeft, true
		case 'd', 'D':
			return MoveRight, true
		case ' ':
			return Fire, true
		}
	}
	return 0, false
}

// HandleEvent records a key press event.
func (t *Terminal) HandleEvent(ev *tcell.EventKey) {
	t.HandleKey(ev.Key(), ev.Rune())
}

// HandleKey records a press of key (r is the character for tcell.KeyRune).
// Space drives both Fire and Start.
func (t *Terminal) HandleKey(key tcell.Key, r rune) {
	a, ok := actionFor(key, r)
	if !ok {
		return
	}
	now := t.now()
	t.lastPress[a] = now
	if a == Fire {
		t.lastPress[Start] = now
	}
}

// Update recomputes the held set. Call it once per frame before the simulation reads input.
func (t *Terminal) Update() {
	now := t.now()
	for a := Action(0); a < actionCount; a++ {
		last := t.lastPress[a]
		holding := !last.IsZero() && now.Sub(last) < t.HoldTimeout
		t.released[a] = t.held[a] && !holding
		t.held[a] = holding
	}
}

// Reset forgets every key, e.g. when switching screens.
func (t *Terminal) Reset() {
	t.lastPress = [actionCount]time.Time{}
	t.held = [actionCount]bool{}
	t.released = [actionCount]bool{}
}

func (t *Terminal) Pressed(a Action) bool {
	return a >= 0 && a < actionCount && t.held[a]
}

func (t *Terminal) JustReleased(a Action) bool {
	return a >= 0 && a < actionCount && t.released[a]
}
