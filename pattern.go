package combix

import (
	"fmt"

	"github.com/coregx/coregex/meta"
)

// patternMatcher matches a compiled regular expression anchored at the
// cursor, backed by coregex's multi-strategy engine.
type patternMatcher struct {
	engine  *meta.Engine
	pattern string
}

// Pattern compiles pattern (Perl-compatible syntax, the same dialect
// github.com/coregx/coregex accepts) and returns a matcher that succeeds
// when pattern matches starting exactly at the cursor.
//
// coregex's Engine.Find searches for the leftmost match anywhere in its
// input, not only at its start — Pattern runs it over the source's view
// from the cursor and turns that into anchored-at-cursor matching by
// rejecting any match whose Start() isn't 0 (the cursor itself), rather
// than needing a different search mode.
//
// Pattern panics with a *ConfigError if pattern fails to compile; use
// [NewPattern] to get an error back instead. There is only one Pattern
// constructor, deliberately: both spellings the spec's source material
// used for this atom ("Pattern" and a typo'd variant) are meant to behave
// identically, so combix exposes a single symmetric entry point rather
// than two.
//
// Example:
//
//	digits := combix.Pattern(`\d+`)
func Pattern(pattern string) Matcher {
	m, err := NewPattern(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// NewPattern is the non-panicking form of [Pattern].
func NewPattern(pattern string) (Matcher, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, &ConfigError{
			Kind:    InvalidPattern,
			Message: fmt.Sprintf("pattern: failed to compile %q", pattern),
			Cause:   err,
		}
	}
	return patternMatcher{engine: engine, pattern: pattern}, nil
}

func (m patternMatcher) Execute(src Source, state State, at Cursor) Message {
	if _, ok := state.(cleanState); ok {
		ss, ok := src.(Substringer)
		if !ok {
			panic(&ConfigError{
				Kind:    NonStringSource,
				Message: fmt.Sprintf("pattern %q: source does not implement Substringer", m.pattern),
			})
		}
		view, ok := ss.SubstringFrom(at)
		if !ok {
			return Failure
		}
		match := m.engine.Find([]byte(view))
		if match == nil || match.Start() != 0 {
			return Failure
		}
		next, ok := advance(src, at, match.Len())
		if !ok {
			return Failure
		}
		return SuccessMsg{State: Dirty, At: next, Value: Value{match.String()}}
	}
	if _, ok := state.(dirtyState); ok {
		return Failure
	}
	return contractViolation(m, state)
}

func (m patternMatcher) Success(_ Source, parentState State, _ State, _ Cursor, _ Value) Message {
	return contractViolation(m, parentState)
}

func (m patternMatcher) Failure(_ Source, parentState State) Message {
	return contractViolation(m, parentState)
}
