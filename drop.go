package combix

// DropState records the child's resume state, for re-entry.
type DropState struct {
	Child State
}

type dropMatcher struct{ child Matcher }

// Drop runs child but discards its value, always reporting [Empty]
// instead. Backtracking into Drop simply asks child for its next
// solution; Drop never retries independently of its child.
func Drop(child Matcher) Matcher { return dropMatcher{child: child} }

func (m dropMatcher) Execute(_ Source, state State, at Cursor) Message {
	switch s := state.(type) {
	case cleanState:
		return ExecuteMsg{Parent: m, ParentState: Clean, Child: m.child, ChildState: Clean, At: at}
	case dirtyState:
		return Failure
	case DropState:
		return ExecuteMsg{Parent: m, ParentState: s, Child: m.child, ChildState: s.Child, At: at}
	default:
		return contractViolation(m, state)
	}
}

func (m dropMatcher) Success(_ Source, _ State, childState State, at Cursor, _ Value) Message {
	return SuccessMsg{State: DropState{Child: childState}, At: at, Value: Empty}
}

func (m dropMatcher) Failure(_ Source, _ State) Message {
	return Failure
}
