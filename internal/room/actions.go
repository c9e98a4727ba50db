package room

import "fmt"

// Action is a closed enum of the per-turn moves a player can make. Dispatch
// is exhaustive; the transport maps unknown strings to ErrUnknownAction
// before they reach the state machine.
type Action int

const (
	ActionSee Action = iota
	ActionFold
	ActionCall
	ActionRaise
	ActionCompare
)

// String returns the wire name of the action
func (a Action) String() string {
	switch a {
	case ActionSee:
		return "see"
	case ActionFold:
		return "fold"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	case ActionCompare:
		return "compare"
	default:
		return "unknown"
	}
}

// ParseAction maps a wire name to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "see":
		return ActionSee, nil
	case "fold":
		return ActionFold, nil
	case "call":
		return ActionCall, nil
	case "raise":
		return ActionRaise, nil
	case "compare":
		return ActionCompare, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}
