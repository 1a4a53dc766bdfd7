// internal/component/game_state.go
package component

// Phase — top-level session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseActivePlay
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseActivePlay:
		return "active-play"
	default:
		return "unknown"
	}
}
