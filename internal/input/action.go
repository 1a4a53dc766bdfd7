// internal/input/action.go
package input

// Action is a logical key the simulation asks about.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	Fire
	Start
	actionCount
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Fire:
		return "fire"
	case Start:
		return "start"
	default:
		return "unknown"
	}
}
