package client

// State is the lifecycle position of a client.
type State int

const (
	// StateUnstarted is the state before Start succeeds.
	StateUnstarted State = iota
	// StateReady accepts protocol calls.
	StateReady
	// StateClosed is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
