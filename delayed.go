package combix

// DelayedMatcher lets a grammar refer to itself before the referred-to
// matcher exists — construct one with NewDelayed, wire it into the
// grammar, then bind its real child with Set once the recursive
// definition is complete. Unlike every other matcher in this package,
// DelayedMatcher is a pointer type: its identity (not its value) is what
// a recursive grammar closes over, and Set mutates it exactly once.
type DelayedMatcher struct {
	child Matcher
}

// NewDelayed returns an unbound Delayed matcher. Driving it before Set is
// called panics with a *ConfigError of kind UnboundDelayed.
func NewDelayed() *DelayedMatcher {
	return &DelayedMatcher{}
}

// Set binds d's child. It may be called exactly once; a second call
// panics with a *ConfigError of kind AlreadyBound.
func (d *DelayedMatcher) Set(child Matcher) {
	if d.child != nil {
		panic(&ConfigError{Kind: AlreadyBound, Message: "Delayed: Set called twice"})
	}
	d.child = child
}

// Execute forwards transparently to the bound child: Delayed never names
// itself as Parent, so its Success and Failure are never called by a
// well-behaved driver.
func (d *DelayedMatcher) Execute(src Source, state State, at Cursor) Message {
	if _, ok := state.(dirtyState); ok {
		return Failure
	}
	if d.child == nil {
		panic(&ConfigError{Kind: UnboundDelayed, Message: "Delayed: driven before Set"})
	}
	return d.child.Execute(src, state, at)
}

func (d *DelayedMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(d, parentState)
}

func (d *DelayedMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(d, parentState)
}
