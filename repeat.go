package combix

// repeatConfig holds the resolved options for Repeat; zero value is never
// used directly, only via DefaultRepeatConfig.
type repeatConfig struct {
	lo      int
	hi      int
	flatten bool
	greedy  bool
}

// DefaultRepeatConfig matches zero-or-more repetitions, flattening child
// values, enumerated greedily (deepest match first) — the most common
// shape of repetition.
func DefaultRepeatConfig() repeatConfig {
	return repeatConfig{lo: 0, hi: Unbounded, flatten: true, greedy: true}
}

// RepeatOption configures a [Repeat] call; apply in any order, later
// options override earlier ones for the same field.
type RepeatOption func(*repeatConfig)

// Min sets the minimum number of repetitions (default 0).
func Min(n int) RepeatOption { return func(c *repeatConfig) { c.lo = n } }

// Max sets the maximum number of repetitions, or [Unbounded] (default).
func Max(n int) RepeatOption { return func(c *repeatConfig) { c.hi = n } }

// Flatten controls whether child values are flattened into the result
// (default true) or nested one element per repetition (false, like And).
func Flatten(flatten bool) RepeatOption { return func(c *repeatConfig) { c.flatten = flatten } }

// Greedy controls enumeration order: true (default) tries the longest
// repetition count first via [Depth]; false tries the shortest first via
// [Breadth].
func Greedy(greedy bool) RepeatOption { return func(c *repeatConfig) { c.greedy = greedy } }

// Repeat matches child repeatedly, governed by options ([Min], [Max],
// [Flatten], [Greedy]). It is a thin constructor over [Depth] and
// [Breadth] — Repeat itself holds no state and dispatches to whichever
// one its Greedy option selects.
//
// Example:
//
//	// Zero or more, shortest count first.
//	combix.Repeat(combix.Dot(), combix.Greedy(false))
func Repeat(child Matcher, opts ...RepeatOption) Matcher {
	cfg := DefaultRepeatConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateBounds(cfg.lo, cfg.hi); err != nil {
		panic(err)
	}
	if cfg.greedy {
		return Depth(child, cfg.lo, cfg.hi, cfg.flatten)
	}
	return Breadth(child, cfg.lo, cfg.hi, cfg.flatten)
}
