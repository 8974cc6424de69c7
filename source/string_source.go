// Package source provides ready-made combix.Source implementations over
// strings and token slices.
package source

import "github.com/coregx/combix"

// StringSource drives a combix grammar over the bytes of a string.
// Cursors are byte offsets (int), not rune indices: Next yields individual
// bytes as tokens, which keeps advancing a cursor by a coregex match's
// byte length (via combix.Pattern) exact and allocation-free, at the cost
// of Equal/Dot matching single bytes rather than whole runes on
// multi-byte UTF-8 input. Grammars that need rune-level matching should
// build their own Source over []rune instead.
type StringSource struct {
	s string
}

// NewStringSource wraps s for use as a combix.Source.
func NewStringSource(s string) StringSource {
	return StringSource{s: s}
}

var _ combix.Substringer = StringSource{}

// IsEnd reports whether cursor is at or past the end of the string.
func (src StringSource) IsEnd(cursor combix.Cursor) bool {
	i := cursor.(int)
	return i >= len(src.s)
}

// Next returns the byte at cursor and the cursor advanced by one, or
// ok=false at end of input.
func (src StringSource) Next(cursor combix.Cursor) (token any, next combix.Cursor, ok bool) {
	i := cursor.(int)
	if i >= len(src.s) {
		return nil, cursor, false
	}
	return src.s[i], i + 1, true
}

// SubstringFrom returns the remainder of the string starting at cursor.
func (src StringSource) SubstringFrom(cursor combix.Cursor) (view string, ok bool) {
	i := cursor.(int)
	if i < 0 || i > len(src.s) {
		return "", false
	}
	return src.s[i:], true
}
