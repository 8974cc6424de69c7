package combix

import (
	"reflect"
	"testing"

	"github.com/coregx/combix/source"
)

func TestEpsilon(t *testing.T) {
	src := source.NewStringSource("abc")
	sol, ok := firstSolution(src, Epsilon(), 0)
	if !ok {
		t.Fatal("Epsilon failed to match")
	}
	if sol.At != 0 || !reflect.DeepEqual(sol.Value, Empty) {
		t.Errorf("Epsilon: got At=%v Value=%v", sol.At, sol.Value)
	}
	if len(solutions(src, Epsilon(), 0, 2)) != 1 {
		t.Error("Epsilon must be one-shot")
	}
}

func TestInsert(t *testing.T) {
	src := source.NewStringSource("abc")
	sol, ok := firstSolution(src, Insert("synthetic"), 0)
	if !ok {
		t.Fatal("Insert failed to match")
	}
	if sol.At != 0 || !reflect.DeepEqual(sol.Value, Value{"synthetic"}) {
		t.Errorf("Insert: got At=%v Value=%v", sol.At, sol.Value)
	}
}

func TestDot(t *testing.T) {
	src := source.NewStringSource("ab")
	sol, ok := firstSolution(src, Dot(), 0)
	if !ok || sol.At != 1 || !reflect.DeepEqual(sol.Value, Value{byte('a')}) {
		t.Errorf("Dot at 0: got %v ok=%v", sol, ok)
	}
	if _, ok := firstSolution(src, Dot(), 2); ok {
		t.Error("Dot at end-of-input must fail")
	}
}

func TestFail(t *testing.T) {
	src := source.NewStringSource("abc")
	if _, ok := firstSolution(src, Fail(), 0); ok {
		t.Error("Fail must never match")
	}
}

func TestEos(t *testing.T) {
	src := source.NewStringSource("ab")
	if _, ok := firstSolution(src, Eos(), 1); ok {
		t.Error("Eos must fail mid-input")
	}
	sol, ok := firstSolution(src, Eos(), 2)
	if !ok || sol.At != 2 || !reflect.DeepEqual(sol.Value, Empty) {
		t.Errorf("Eos at end: got %v ok=%v", sol, ok)
	}
}
