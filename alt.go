package combix

// AltState records which alternative is active (1-based Index), its
// resume state, and the cursor Alt was entered at.
type AltState struct {
	Child State
	Saved Cursor
	Index int
}

type altMatcher struct{ children []Matcher }

// Alt is ordered choice: it tries each child in order, left to right,
// backtracking into a failed alternative by moving to the next one at the
// same cursor. Alt yields all of a child's solutions (via re-entry) before
// moving to the next child — it never reorders based on length or cost.
// An empty Alt always fails.
func Alt(children ...Matcher) Matcher {
	return altMatcher{children: append([]Matcher(nil), children...)}
}

func (m altMatcher) Execute(_ Source, state State, at Cursor) Message {
	switch s := state.(type) {
	case cleanState:
		if len(m.children) == 0 {
			return Failure
		}
		return ExecuteMsg{Parent: m, ParentState: AltState{Child: Clean, Saved: at, Index: 1}, Child: m.children[0], ChildState: Clean, At: at}
	case dirtyState:
		return Failure
	case AltState:
		return ExecuteMsg{Parent: m, ParentState: s, Child: m.children[s.Index-1], ChildState: s.Child, At: s.Saved}
	default:
		return contractViolation(m, state)
	}
}

func (m altMatcher) Success(_ Source, parentState State, childState State, at Cursor, value Value) Message {
	s := parentState.(AltState)
	return SuccessMsg{State: AltState{Child: childState, Saved: s.Saved, Index: s.Index}, At: at, Value: value}
}

func (m altMatcher) Failure(_ Source, parentState State) Message {
	s := parentState.(AltState)
	if s.Index == len(m.children) {
		return Failure
	}
	next := s.Index + 1
	return ExecuteMsg{Parent: m, ParentState: AltState{Child: Clean, Saved: s.Saved, Index: next}, Child: m.children[next-1], ChildState: Clean, At: s.Saved}
}
