package subst

import (
	"testing"

	"github.com/eprover-go/cladex/term"
)

func TestMatchBindsVariable(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(1)
	a := b.Intern(10)

	var s Stack
	cp := s.Checkpoint()
	if !s.Match(x, a, term.Equal) {
		t.Fatalf("expected variable to match any ground term")
	}
	if got := s.Deref(x); got != a {
		t.Fatalf("Deref(x) = %v, want %v", got, a)
	}
	s.Rollback(cp)
	if got := s.Deref(x); got != x {
		t.Fatalf("after rollback x must be unbound, got %v", got)
	}
}

func TestMatchRepeatedVariableMustAgree(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(1)
	a := b.Intern(10)
	c := b.Intern(20)
	f := b.Intern(30, x, x)

	var s Stack
	cp := s.Checkpoint()
	if s.Match(f, b.Intern(30, a, c), term.Equal) {
		t.Fatalf("f(x,x) must not match f(a,c)")
	}
	s.Rollback(cp)
	if int(s.Checkpoint()) != int(cp) {
		t.Fatalf("stack must be restored to entering checkpoint on failure")
	}

	if !s.Match(f, b.Intern(30, a, a), term.Equal) {
		t.Fatalf("f(x,x) must match f(a,a)")
	}
}

func TestMatchFunctorMismatch(t *testing.T) {
	var b term.Bank
	a := b.Intern(10)
	c := b.Intern(20)

	var s Stack
	if s.Match(a, c, term.Equal) {
		t.Fatalf("distinct constants must not match")
	}
}

func TestMatchTargetVariableNeverMatchesFunctorPattern(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(1)
	f := b.Intern(30, x)

	var s Stack
	if s.Match(f, x, term.Equal) {
		t.Fatalf("a functor pattern must not match a bare target variable")
	}
}

func TestRollbackUnbindsInReverseOrder(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(1)
	y := b.FreshVar(2)
	a := b.Intern(10)
	c := b.Intern(20)

	var s Stack
	cp0 := s.Checkpoint()
	s.Bind(x, a)
	cp1 := s.Checkpoint()
	s.Bind(y, c)

	s.Rollback(cp1)
	if s.Deref(y) != y {
		t.Fatalf("y must be unbound after rollback to cp1")
	}
	if s.Deref(x) != a {
		t.Fatalf("x must stay bound after rollback to cp1")
	}

	s.Rollback(cp0)
	if s.Deref(x) != x {
		t.Fatalf("x must be unbound after rollback to cp0")
	}
}
