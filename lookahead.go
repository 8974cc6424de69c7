package combix

// LookaheadState records the child's resume state and the cursor Lookahead
// restores on every success.
type LookaheadState struct {
	Child State
	Saved Cursor
}

type lookaheadMatcher struct{ child Matcher }

// Lookahead runs child at the cursor but, on success, restores the
// original cursor and discards the value — it only asserts that child
// matches here, without consuming. Backtracking into Lookahead drives
// child's next solution, again restoring the saved cursor on success.
func Lookahead(child Matcher) Matcher { return lookaheadMatcher{child: child} }

func (m lookaheadMatcher) Execute(_ Source, state State, at Cursor) Message {
	switch s := state.(type) {
	case cleanState:
		return ExecuteMsg{Parent: m, ParentState: LookaheadState{Child: Clean, Saved: at}, Child: m.child, ChildState: Clean, At: at}
	case dirtyState:
		return Failure
	case LookaheadState:
		return ExecuteMsg{Parent: m, ParentState: s, Child: m.child, ChildState: s.Child, At: s.Saved}
	default:
		return contractViolation(m, state)
	}
}

func (m lookaheadMatcher) Success(_ Source, parentState State, childState State, _ Cursor, _ Value) Message {
	s := parentState.(LookaheadState)
	return ResponseMsg{State: LookaheadState{Child: childState, Saved: s.Saved}, At: s.Saved, Value: Empty, Ok: true}
}

func (m lookaheadMatcher) Failure(_ Source, _ State) Message {
	return Failure
}
