package tui

// formState is the suggestion panel lifecycle. The panel is either hidden,
// waiting for input, or holding a send in flight.
type formState int

const (
	formClosed formState = iota
	formIdle
	formSubmitting
)

func (s formState) String() string {
	switch s {
	case formClosed:
		return "closed"
	case formIdle:
		return "idle"
	case formSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type formEvent int

const (
	formToggle formEvent = iota
	formSubmit
	formDelayElapsed
)

// nextFormState is the whole panel lifecycle in one place. hasIdea reports
// whether the required "Tool Idea" field is non-empty; it is the only
// validation the panel performs. While a send is in flight the toggle is
// ignored — the panel stays up until the delay elapses.
func nextFormState(state formState, event formEvent, hasIdea bool) formState {
	switch state {
	case formClosed:
		if event == formToggle {
			return formIdle
		}
	case formIdle:
		switch event {
		case formToggle:
			return formClosed
		case formSubmit:
			if hasIdea {
				return formSubmitting
			}
		}
	case formSubmitting:
		if event == formDelayElapsed {
			return formIdle
		}
	}
	return state
}
