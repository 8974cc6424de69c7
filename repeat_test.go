package combix

import (
	"testing"

	"github.com/coregx/combix/source"
)

func TestRepeatDefaultsToGreedyZeroOrMore(t *testing.T) {
	src := source.NewStringSource("aaa")
	ss := solutions(src, Repeat(Dot()), 0, 10)
	if len(ss) != 4 {
		t.Fatalf("Repeat() default should enumerate 3,2,1,0 matches (4 solutions), got %d: %v", len(ss), ss)
	}
	if ss[0].At != 3 || ss[len(ss)-1].At != 0 {
		t.Errorf("expected greedy longest-first order, got %v", ss)
	}
}

func TestRepeatNonGreedy(t *testing.T) {
	src := source.NewStringSource("aaa")
	ss := solutions(src, Repeat(Dot(), Greedy(false)), 0, 10)
	if len(ss) != 4 {
		t.Fatalf("expected 4 solutions, got %d: %v", len(ss), ss)
	}
	if ss[0].At != 0 || ss[len(ss)-1].At != 3 {
		t.Errorf("expected non-greedy shortest-first order, got %v", ss)
	}
}

func TestRepeatMinMax(t *testing.T) {
	src := source.NewStringSource("aaaaa")
	sol, ok := firstSolution(src, Repeat(Dot(), Min(2), Max(4)), 0)
	if !ok || sol.At != 4 {
		t.Errorf("Repeat(Min(2),Max(4)): got %v ok=%v", sol, ok)
	}
}

func TestRepeatFlattenFalseNests(t *testing.T) {
	src := source.NewStringSource("aa")
	sol, ok := firstSolution(src, Repeat(Dot(), Max(2), Flatten(false)), 0)
	if !ok {
		t.Fatal("Repeat(Flatten(false)) failed to match")
	}
	if len(sol.Value) != 2 {
		t.Errorf("expected 2 nested elements, got %v", sol.Value)
	}
}
