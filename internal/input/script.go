// internal/input/script.go
package input

// Frame is the set of actions held during one tick.
type Frame map[Action]bool

// Script replays a fixed sequence of frames, one per Advance. Past the end it keeps
// holding the last frame, or starts over when Loop is set. Releases are derived from
// consecutive frames.
type Script struct {
	Frames []Frame
	Loop   bool

	cur  int
	prev Frame
}

// NewScript builds a script from frames.
func NewScript(frames ...Frame) *Script {
	return &Script{Frames: frames}
}

// Hold returns a frame with the given actions held.
func Hold(actions ...Action) Frame {
	f := make(Frame, len(actions))
	for _, a := range actions {
		f[a] = true
	}
	return f
}

// Repeat returns n copies of frame.
func Repeat(frame Frame, n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = frame
	}
	return out
}

func (s *Script) frame() Frame {
	if len(s.Frames) == 0 {
		return nil
	}
	if s.cur < len(s.Frames) {
		return s.Frames[s.cur]
	}
	if s.Loop {
		return s.Frames[s.cur%len(s.Frames)]
	}
	return s.Frames[len(s.Frames)-1]
}

// Advance moves to the next frame. Call it once per tick, after the simulation ran.
func (s *Script) Advance() {
	s.prev = s.frame()
	s.cur++
}

func (s *Script) Pressed(a Action) bool {
	return s.frame()[a]
}

func (s *Script) JustReleased(a Action) bool {
	return s.prev[a] && !s.frame()[a]
}
