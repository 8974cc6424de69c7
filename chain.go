package combix

// chainFrame is one link in the immutable, shared stack that Series,
// Depth, and Breadth use to record "the k-th child matched, producing this
// value, advancing to this cursor, resumable from this state." Frames are
// never mutated after construction — only ever linked onto (push) or
// walked back through (backtrack) — which is what lets many in-flight
// partial solutions share the same prefix of frames by pointer, per the
// "arena ownership" design note: the chain is a DAG, not a tree, and needs
// no cycle-collecting GC.
type chainFrame struct {
	prev   *chainFrame
	result Value
	cursor Cursor
	state  State
	depth  int // 1-based: this frame is the depth-th match
}

// depthOf returns how many frames are linked from top, 0 if top is nil.
func depthOf(top *chainFrame) int {
	if top == nil {
		return 0
	}
	return top.depth
}

// frameCursor is the current position after top's match, or start if top
// is nil — where the next repetition (or the overall result, if there is
// no next repetition) continues from.
func frameCursor(top *chainFrame, start Cursor) Cursor {
	if top == nil {
		return start
	}
	return top.cursor
}

// entryCursor is the cursor the child at slot top.depth-1 was entered at:
// the cursor recorded by the frame before it, or start if top is the first
// frame (or there is no top at all).
func entryCursor(top *chainFrame, start Cursor) Cursor {
	if top == nil {
		return start
	}
	if top.prev == nil {
		return start
	}
	return top.prev.cursor
}

// results walks the chain from top back to its root and returns the
// matched Values in forward (first-matched-first) order.
func results(top *chainFrame) []Value {
	if top == nil {
		return nil
	}
	out := make([]Value, top.depth)
	for f := top; f != nil; f = f.prev {
		out[f.depth-1] = f.result
	}
	return out
}

// push links a new frame for the child that just matched, producing value
// at cursor with resume state state.
func push(top *chainFrame, value Value, cursor Cursor, state State) *chainFrame {
	return &chainFrame{prev: top, result: value, cursor: cursor, state: state, depth: depthOf(top) + 1}
}
