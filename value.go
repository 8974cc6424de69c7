package combix

// Value is the unit of parser output: an ordered sequence of arbitrary
// elements produced by a successful match. A nil or zero-length Value is
// the distinguished [Empty] value.
//
// Values are never mutated after a matcher returns them; combinators that
// need to combine child values always build a fresh Value.
type Value []any

// Empty is the distinguished empty Value. It is the zero value of Value,
// named here because several matchers (Epsilon, Drop, Lookahead, Not, Eos)
// return it explicitly and reading EMPTY in their code should read the
// same as it does in the spec.
var Empty Value

// flatten concatenates vs into a single Value, in order. EMPTY elements
// contribute nothing, so flattening naturally discards them.
func flatten(vs []Value) Value {
	var out Value
	for _, v := range vs {
		out = append(out, v...)
	}
	return out
}

// nest boxes each element of vs as a single entry of the result, producing
// a sequence-of-sequences (used by And/Series with flatten=false).
func nest(vs []Value) Value {
	out := make(Value, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// assemble applies flatten or nest depending on doFlatten, matching the
// Seq/And distinction described for Series, Depth, and Breadth.
func assemble(vs []Value, doFlatten bool) Value {
	if doFlatten {
		return flatten(vs)
	}
	return nest(vs)
}
