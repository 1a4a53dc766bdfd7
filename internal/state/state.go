// internal/state/state.go
package state

// State — one screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Exit()
}

// StateMachine — holds the current state and switches between states.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine without an initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, for drivers that draw it.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update runs the current state.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}
