package combix

// This file implements a minimal trampoline purely for exercising
// matchers in tests. Driving a grammar end-to-end (turning the
// Execute/Success/Failure message protocol into an actual parse loop) is
// explicitly left to callers of this package, so no such driver ships in
// the library itself — but tests need one to pump messages, hence this
// unexported helper.

// pendingFrame is one entry in the trampoline's explicit call stack: a
// matcher waiting to hear its dispatched child's outcome.
type pendingFrame struct {
	parent Matcher
	state  State
}

// pump runs the message loop starting from msg, resolving ExecuteMsg by
// pushing onto stack and SuccessMsg/Failure by popping it, until an
// outcome reaches the top (empty stack). The returned Message is always
// either a SuccessMsg or the Failure sentinel: ResponseMsg is normalized
// away before it can surface here.
func pump(src Source, stack []pendingFrame, msg Message) Message {
	for {
		switch mm := msg.(type) {
		case ExecuteMsg:
			stack = append(stack, pendingFrame{parent: mm.Parent, state: mm.ParentState})
			msg = mm.Child.Execute(src, mm.ChildState, mm.At)
		case SuccessMsg:
			if len(stack) == 0 {
				return mm
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			msg = top.parent.Success(src, top.state, mm.State, mm.At, mm.Value)
		case ResponseMsg:
			if mm.Ok {
				msg = SuccessMsg{State: mm.State, At: mm.At, Value: mm.Value}
			} else {
				msg = Failure
			}
		case failureMsg:
			if len(stack) == 0 {
				return mm
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			msg = top.parent.Failure(src, top.state)
		default:
			panic("combix: pump received an unrecognized Message")
		}
	}
}

// solution is one parse result produced by driving a top-level matcher.
type solution struct {
	At    Cursor
	Value Value
}

// solutions drives m against src starting at 'at', collecting up to max
// solutions in the order the matcher produces them (re-entering with each
// returned resume state to ask for the next one).
func solutions(src Source, m Matcher, at Cursor, max int) []solution {
	var out []solution
	state := Clean
	for i := 0; i < max; i++ {
		outcome := pump(src, nil, m.Execute(src, state, at))
		s, ok := outcome.(SuccessMsg)
		if !ok {
			break
		}
		out = append(out, solution{At: s.At, Value: s.Value})
		state = s.State
	}
	return out
}

// firstSolution drives m for a single solution, reporting ok=false if it
// fails outright.
func firstSolution(src Source, m Matcher, at Cursor) (solution, bool) {
	ss := solutions(src, m, at, 1)
	if len(ss) == 0 {
		return solution{}, false
	}
	return ss[0], true
}
