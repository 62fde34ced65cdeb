package renderloop

type State int32

const (
	Running State = iota
	ClosingRequested
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ClosingRequested:
		return "closing-requested"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
