package combix

// SeriesState is the shared resume state for Seq, And, and Series: a
// chain of frames, one per matched child so far, plus the cursor Series
// was entered at.
type SeriesState struct {
	top   *chainFrame
	start Cursor
}

type seriesMatcher struct {
	children []Matcher
	flatten  bool
}

// Seq matches each child in order, flattening their values into a single
// result Value. An empty Seq matches the empty string.
func Seq(children ...Matcher) Matcher {
	return Series(true, children...)
}

// And matches each child in order like Seq, but nests each child's Value
// as one element of the result rather than flattening them together.
func And(children ...Matcher) Matcher {
	return Series(false, children...)
}

// Series is the shared constructor behind Seq (flatten=true) and And
// (flatten=false).
func Series(flattenValues bool, children ...Matcher) Matcher {
	return seriesMatcher{children: append([]Matcher(nil), children...), flatten: flattenValues}
}

func (m seriesMatcher) Execute(_ Source, state State, at Cursor) Message {
	switch s := state.(type) {
	case cleanState:
		if len(m.children) == 0 {
			return SuccessMsg{State: Dirty, At: at, Value: Empty}
		}
		return ExecuteMsg{Parent: m, ParentState: SeriesState{top: nil, start: at}, Child: m.children[0], ChildState: Clean, At: at}
	case dirtyState:
		return Failure
	case SeriesState:
		return m.backtrack(s)
	default:
		return contractViolation(m, state)
	}
}

func (m seriesMatcher) Success(_ Source, parentState State, childState State, at Cursor, value Value) Message {
	s := parentState.(SeriesState)
	idx := depthOf(s.top)
	newTop := push(s.top, value, at, childState)
	newState := SeriesState{top: newTop, start: s.start}
	if idx+1 == len(m.children) {
		return SuccessMsg{State: newState, At: at, Value: assemble(results(newTop), m.flatten)}
	}
	return ExecuteMsg{Parent: m, ParentState: newState, Child: m.children[idx+1], ChildState: Clean, At: at}
}

func (m seriesMatcher) Failure(_ Source, parentState State) Message {
	s := parentState.(SeriesState)
	return m.backtrack(s)
}

// backtrack pops the last-matched child's frame and re-drives it for its
// next solution — whether this is reached because a later child just
// failed to match at all (nothing new was pushed, so this is really "ask
// the last successful child for another solution") or because the driver
// asked Series itself for another solution (re-entry), the action is the
// same: the frame we pop is always the one currently "active."
func (m seriesMatcher) backtrack(s SeriesState) Message {
	if s.top == nil {
		return Failure
	}
	idx := s.top.depth - 1
	from := entryCursor(s.top, s.start)
	childState := s.top.state
	popped := SeriesState{top: s.top.prev, start: s.start}
	return ExecuteMsg{Parent: m, ParentState: popped, Child: m.children[idx], ChildState: childState, At: from}
}
