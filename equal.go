package combix

// equalMatcher walks a fixed sequence of tokens against the source,
// failing on the first mismatch or premature end-of-input, and otherwise
// reports the whole sequence as one matched element.
type equalMatcher struct {
	seq   []any
	whole any
}

// Equal matches a literal sequence of tokens, comparing each via ==. It
// reports the whole sequence as a single element (not one element per
// token) on success. Elements must be comparable; a non-comparable
// element panics the same way x == y would.
func Equal(seq ...any) Matcher {
	cp := append([]any(nil), seq...)
	return equalMatcher{seq: cp, whole: cp}
}

// EqualString matches a literal string against a byte-oriented Source
// (such as [github.com/coregx/combix/source.StringSource]), comparing one
// byte at a time, and reports the whole string as the matched element.
func EqualString(s string) Matcher {
	seq := make([]any, len(s))
	for i := 0; i < len(s); i++ {
		seq[i] = s[i]
	}
	return equalMatcher{seq: seq, whole: s}
}

func (m equalMatcher) Execute(src Source, state State, at Cursor) Message {
	if _, ok := state.(cleanState); ok {
		cur := at
		for _, want := range m.seq {
			if src.IsEnd(cur) {
				return Failure
			}
			got, next, ok := src.Next(cur)
			if !ok || got != want {
				return Failure
			}
			cur = next
		}
		return SuccessMsg{State: Dirty, At: cur, Value: Value{m.whole}}
	}
	if _, ok := state.(dirtyState); ok {
		return Failure
	}
	return contractViolation(m, state)
}

func (m equalMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(m, parentState)
}

func (m equalMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(m, parentState)
}
