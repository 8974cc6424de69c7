package combix

// State is per-invocation progress of one matcher at one call site. Every
// matcher defines its own concrete State type(s) beyond the two universal
// sentinels, [Clean] and [Dirty]. State values are never mutated after
// creation — a combinator that needs to "update" a state builds a new one.
type State any

type cleanState struct{}
type dirtyState struct{}

// Clean is the sentinel state meaning "this matcher has not yet been
// entered at this call site." Every parse of a matcher begins with
// Execute(src, Clean, cursor).
var Clean State = cleanState{}

// Dirty is the sentinel state meaning "this matcher has already been
// exhausted here and will only ever produce Failure." Re-entering any
// matcher with Dirty must return Failure without side effects; this is the
// uniform one-shot behavior atoms rely on and combinators propagate
// automatically once their child has handed them a Dirty resume state.
var Dirty State = dirtyState{}

// Message is the sole return type of every Matcher method. It is a closed
// set of four variants: [ExecuteMsg], [SuccessMsg], [ResponseMsg], and the
// singleton [Failure].
type Message interface {
	isMessage()
}

// ExecuteMsg asks the driver to run Child at cursor At in state ChildState,
// and to deliver the eventual outcome to Parent in state ParentState — via
// Parent.Success(src, ParentState, childResumeState, cursor, value) on a
// match, or Parent.Failure(src, ParentState) otherwise.
type ExecuteMsg struct {
	Parent      Matcher
	ParentState State
	Child       Matcher
	ChildState  State
	At          Cursor
}

func (ExecuteMsg) isMessage() {}

// SuccessMsg reports that the matcher produced Value, advanced to At, and
// should be remembered as State for its next re-entry (asking for another
// solution).
type SuccessMsg struct {
	State State
	At    Cursor
	Value Value
}

func (SuccessMsg) isMessage() {}

// ResponseMsg is a convenience equivalent of SuccessMsg/Failure threaded
// through the driver without dispatching a new child. Ok distinguishes the
// two: Ok=true carries a real State/At/Value triple exactly like
// SuccessMsg; Ok=false means "failure," with State/At/Value undefined.
type ResponseMsg struct {
	State State
	At    Cursor
	Value Value
	Ok    bool
}

func (ResponseMsg) isMessage() {}

type failureMsg struct{}

func (failureMsg) isMessage() {}

// Failure is the universal sentinel for "no match here." It is never a Go
// error — it drives backtracking and is the expected outcome of an
// exhausted alternative, not a fault.
var Failure Message = failureMsg{}

// Matcher is an immutable description of a parsing rule: a small, reentrant
// state machine that communicates with its driver solely through Message
// values returned from these three methods.
//
//   - Execute is called when the driver enters this matcher fresh (state
//     Clean) or re-enters it to request another solution (state whatever
//     this matcher's own prior Success/Response carried).
//   - Success is called when a child this matcher dispatched (via
//     ExecuteMsg) produced a match: parentState is the ParentState this
//     matcher supplied in that ExecuteMsg, childState is the child's own
//     resume state, at/value are the child's result.
//   - Failure is called when a dispatched child produced Failure.
type Matcher interface {
	Execute(src Source, state State, at Cursor) Message
	Success(src Source, parentState State, childState State, at Cursor, value Value) Message
	Failure(src Source, parentState State) Message
}
