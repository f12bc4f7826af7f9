package measure

// State is the lifecycle position of a run.
type State uint8

const (
	NotStarted State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Reason records which terminal condition ended a run.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonBudget
	ReasonSaturated
	ReasonInitFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonBudget:
		return "budget"
	case ReasonSaturated:
		return "saturated"
	case ReasonInitFailed:
		return "init_failed"
	default:
		return "none"
	}
}
