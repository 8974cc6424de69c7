package combix

// bEntry is one partial solution in a Breadth matcher's frontier: a
// cursor, the child's resume state for growing this entry further, and
// the chain of matched values so far. Entries share prefixes of their
// chain by pointer, never by mutation.
type bEntry struct {
	cursor Cursor
	child  State
	chain  *chainFrame
}

// BreadthGrow is the resume state a Breadth success carries: asking for
// the next solution re-enters here and grows the frontier's head entry
// for another sibling before yielding again.
type BreadthGrow struct {
	queue []*bEntry
}

// growDispatch is the bookkeeping ParentState Breadth hands the driver
// while it is growing the queue's head entry; it never escapes as a
// resume state.
type growDispatch struct {
	queue []*bEntry
}

type breadthMatcher struct {
	child   Matcher
	lo, hi  int
	flatten bool
}

// Breadth repeats child between lo and hi times like [Depth], but
// enumerates match counts non-greedily in level order: it yields the
// shortest valid repetition count first, then grows the frontier one step
// at a time across all pending entries before yielding the next count.
//
// Example:
//
//	// Matches "aaaa" 2 times then 3 times, shortest-first.
//	combix.Breadth(combix.Dot(), 2, 3, true)
func Breadth(child Matcher, lo, hi int, flattenValues bool) Matcher {
	if err := validateBounds(lo, hi); err != nil {
		panic(err)
	}
	return breadthMatcher{child: child, lo: lo, hi: hi, flatten: flattenValues}
}

func (m breadthMatcher) Execute(_ Source, state State, at Cursor) Message {
	switch s := state.(type) {
	case cleanState:
		init := &bEntry{cursor: at, child: Clean, chain: nil}
		return m.yield([]*bEntry{init})
	case dirtyState:
		return Failure
	case BreadthGrow:
		return m.grow(s.queue)
	default:
		return contractViolation(m, state)
	}
}

func (m breadthMatcher) Success(_ Source, parentState State, childState State, at Cursor, value Value) Message {
	s, ok := parentState.(growDispatch)
	if !ok {
		return contractViolation(m, parentState)
	}
	head := s.queue[0]
	grown := &bEntry{cursor: at, child: Clean, chain: push(head.chain, value, at, Clean)}
	updatedHead := &bEntry{cursor: head.cursor, child: childState, chain: head.chain}
	newQueue := make([]*bEntry, 0, len(s.queue)+1)
	newQueue = append(newQueue, updatedHead)
	newQueue = append(newQueue, s.queue[1:]...)
	newQueue = append(newQueue, grown)
	return m.grow(newQueue)
}

func (m breadthMatcher) Failure(_ Source, parentState State) Message {
	s, ok := parentState.(growDispatch)
	if !ok {
		return contractViolation(m, parentState)
	}
	rest := s.queue[1:]
	return m.yield(rest)
}

// grow asks the frontier's head entry for one more sibling match,
// provided it hasn't already reached hi.
func (m breadthMatcher) grow(queue []*bEntry) Message {
	if len(queue) == 0 {
		return Failure
	}
	head := queue[0]
	if m.hi != Unbounded && depthOf(head.chain) >= m.hi {
		// head cannot grow past hi. Every entry behind it in a BFS frontier
		// is at least as deep, so none of them can grow either: drop head
		// and yield the remaining entries in order until none are left.
		return m.yield(queue[1:])
	}
	return ExecuteMsg{Parent: m, ParentState: growDispatch{queue: queue}, Child: m.child, ChildState: head.child, At: head.cursor}
}

// yield emits the frontier's head entry as a solution if it has matched
// at least lo times, otherwise grows the frontier without emitting.
func (m breadthMatcher) yield(queue []*bEntry) Message {
	if len(queue) == 0 {
		return Failure
	}
	head := queue[0]
	depth := depthOf(head.chain)
	if depth >= m.lo {
		return SuccessMsg{State: BreadthGrow{queue: queue}, At: head.cursor, Value: assemble(results(head.chain), m.flatten)}
	}
	return m.grow(queue)
}
