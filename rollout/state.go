package rollout

// State is the conversation loop state for one trajectory.
type State int

// Trajectory states.
const (
	// StateAwaitingModel means the loop is waiting for the next model turn.
	StateAwaitingModel State = iota

	// StateToolCallPending means the model emitted tool calls that have not
	// been dispatched yet.
	StateToolCallPending

	// StateToolResultReady means tool observations are ready to feed back.
	StateToolResultReady

	// StateTerminal means the trajectory is complete.
	StateTerminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitingModel:
		return "awaiting-model"
	case StateToolCallPending:
		return "tool-call-pending"
	case StateToolResultReady:
		return "tool-result-ready"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}
