package combix

// epsilonMatcher always succeeds, consuming nothing.
type epsilonMatcher struct{}

// Epsilon matches the empty string: it always succeeds without consuming
// any input. Useful as a neutral element in Alt/Series, or to mark an
// optional branch.
func Epsilon() Matcher { return epsilonMatcher{} }

func (epsilonMatcher) Execute(_ Source, state State, at Cursor) Message {
	if _, ok := state.(cleanState); ok {
		return SuccessMsg{State: Dirty, At: at, Value: Empty}
	}
	if _, ok := state.(dirtyState); ok {
		return Failure
	}
	return contractViolation(epsilonMatcher{}, state)
}

func (m epsilonMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(m, parentState)
}

func (m epsilonMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(m, parentState)
}

// insertMatcher injects a value without consuming input.
type insertMatcher struct{ value any }

// Insert matches the empty string but reports value as its match, as if a
// token had been read. Used to inject synthetic tokens into a parse (e.g.
// a default value for an optional field).
func Insert(value any) Matcher { return insertMatcher{value: value} }

func (m insertMatcher) Execute(_ Source, state State, at Cursor) Message {
	if _, ok := state.(cleanState); ok {
		return SuccessMsg{State: Dirty, At: at, Value: Value{m.value}}
	}
	if _, ok := state.(dirtyState); ok {
		return Failure
	}
	return contractViolation(m, state)
}

func (m insertMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(m, parentState)
}

func (m insertMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(m, parentState)
}

// dotMatcher consumes exactly one token, whatever it is.
type dotMatcher struct{}

// Dot matches any single token, failing only at end-of-input.
func Dot() Matcher { return dotMatcher{} }

func (m dotMatcher) Execute(src Source, state State, at Cursor) Message {
	if _, ok := state.(cleanState); ok {
		if src.IsEnd(at) {
			return Failure
		}
		tok, next, ok := src.Next(at)
		if !ok {
			return Failure
		}
		return SuccessMsg{State: Dirty, At: next, Value: Value{tok}}
	}
	if _, ok := state.(dirtyState); ok {
		return Failure
	}
	return contractViolation(m, state)
}

func (m dotMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(m, parentState)
}

func (m dotMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(m, parentState)
}

// failMatcher never matches.
type failMatcher struct{}

// Fail never matches, regardless of input or state. Useful as the base
// case of a grammar built up programmatically, or as a placeholder.
func Fail() Matcher { return failMatcher{} }

func (failMatcher) Execute(_ Source, _ State, _ Cursor) Message { return Failure }

func (m failMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(m, parentState)
}

func (m failMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(m, parentState)
}

// eosMatcher matches only at end-of-input.
type eosMatcher struct{}

// Eos matches the empty string, but only when the cursor is at
// end-of-input; it fails everywhere else.
func Eos() Matcher { return eosMatcher{} }

func (m eosMatcher) Execute(src Source, state State, at Cursor) Message {
	if _, ok := state.(cleanState); ok {
		if src.IsEnd(at) {
			return SuccessMsg{State: Dirty, At: at, Value: Empty}
		}
		return Failure
	}
	if _, ok := state.(dirtyState); ok {
		return Failure
	}
	return contractViolation(m, state)
}

func (m eosMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(m, parentState)
}

func (m eosMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(m, parentState)
}
