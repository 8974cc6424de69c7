package source

import "github.com/coregx/combix"

// SliceSource drives a combix grammar over an arbitrary slice of
// already-tokenized values (e.g. a lexer's output). Cursors are indices
// into the slice. SliceSource does not implement combix.Substringer:
// combix.Pattern cannot be used against it.
type SliceSource struct {
	tokens []any
}

// NewSliceSource wraps tokens for use as a combix.Source.
func NewSliceSource(tokens []any) SliceSource {
	return SliceSource{tokens: tokens}
}

var _ combix.Source = SliceSource{}

// IsEnd reports whether cursor is at or past the end of tokens.
func (src SliceSource) IsEnd(cursor combix.Cursor) bool {
	i := cursor.(int)
	return i >= len(src.tokens)
}

// Next returns the token at cursor and the cursor advanced by one, or
// ok=false at end of input.
func (src SliceSource) Next(cursor combix.Cursor) (token any, next combix.Cursor, ok bool) {
	i := cursor.(int)
	if i >= len(src.tokens) {
		return nil, cursor, false
	}
	return src.tokens[i], i + 1, true
}
