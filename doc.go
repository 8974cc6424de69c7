// Package combix implements the core of a parser-combinator engine: a
// library of composable matchers that parse an input sequence by
// message-passing with an external trampoline/driver.
//
// A Matcher is a small, reentrant state machine. It never drives itself —
// it never calls another matcher's Execute/Success/Failure method directly
// except to build a transition [Message] describing what the driver should
// do next. This discipline turns a naturally recursive, stack-consuming
// parser into an iterative evaluator: the driver repeatedly calls Execute,
// Success, or Failure on whichever matcher a [Message] names, and forwards
// the outcome to whoever asked for it. Backtracking and "give me the next
// solution" semantics fall out of re-entering a matcher's own returned
// state, never out of deep Go call stacks.
//
// combix ships the matcher algebra only: atoms (Epsilon, Insert, Dot, Fail,
// Equal, Pattern, Eos), combinators (Drop, Lookahead, Not, Alt, Series,
// Depth, Breadth, Repeat, Delayed), and the transition protocol they speak.
// The trampoline that interprets transition messages, a cache/memoization
// layer, pretty-printing, and a top-level "parse this string" convenience
// API are all left to the driver — deliberately: see the package-level
// design notes in the repository's SPEC_FULL.md for the reasoning.
//
// # Quick example
//
// A driver entering a matcher at the start of a parse always calls
// Execute with the [Clean] state:
//
//	m := combix.Seq(combix.EqualString("a"), combix.EqualString("b"))
//	msg := m.Execute(src, combix.Clean, 0)
//
// Every subsequent step is driven by interpreting whatever [Message] comes
// back — an [ExecuteMsg] names a child to run and a parent to deliver the
// outcome to; a [SuccessMsg] or [ResponseMsg] carries a value and a resume
// state; [Failure] is the universal "no match" sentinel.
package combix
