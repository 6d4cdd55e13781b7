// Package subst implements the append-only, checkpointed substitution
// stack shared by every matcher in cladex (L0 of the layering).
package subst

import "github.com/eprover-go/cladex/term"

// EqualFunc decides term identity for Match's base case. Hosts
// typically pass term.Equal (pointer equality after hash-consing);
// it is a parameter rather than a hard dependency on term.Equal so
// tests can plug in a structural comparison.
type EqualFunc func(a, b *term.Term) bool

// Stack is an append-only vector of variable bindings plus a cursor.
// Checkpoint records the cursor; Rollback truncates to it and unbinds
// in reverse order. The zero value is ready to use.
type Stack struct {
	bindings []*term.Term
	bound    map[*term.Term]*term.Term
}

// Pos is an opaque stack cursor returned by Checkpoint.
type Pos int

// Checkpoint returns the current stack position.
func (s *Stack) Checkpoint() Pos { return Pos(len(s.bindings)) }

// Rollback truncates the stack to pos, unbinding every binding made
// since in reverse order. Rolling back to a Pos captured on a
// now-shorter stack is a programming error and panics.
func (s *Stack) Rollback(pos Pos) {
	if int(pos) > len(s.bindings) {
		panic("subst: rollback to a position beyond the current stack")
	}
	for i := len(s.bindings) - 1; i >= int(pos); i-- {
		delete(s.bound, s.bindings[i])
	}
	s.bindings = s.bindings[:pos]
}

// Bind records that v is now bound to val. v must be a variable term
// and must not already be bound; callers (Match) enforce this.
func (s *Stack) Bind(v, val *term.Term) {
	if s.bound == nil {
		s.bound = make(map[*term.Term]*term.Term)
	}
	s.bindings = append(s.bindings, v)
	s.bound[v] = val
}

// Deref follows v's binding chain to its current value, or returns v
// unchanged if it is unbound (or not a variable).
func (s *Stack) Deref(t *term.Term) *term.Term {
	for t.IsVar() {
		val, ok := s.bound[t]
		if !ok {
			break
		}
		t = val
	}
	return t
}

// Match attempts to match pattern against target, extending the
// binding stack with any new bindings pattern's variables need. It
// implements one-directional first-order matching (not unification):
// only pattern's variables may be bound, target is treated as ground
// with respect to them. On failure the stack may still hold bindings
// made before the mismatch was found — callers must checkpoint before
// calling and roll back on a false return if they want to retry with a
// different substitution.
func (s *Stack) Match(pattern, target *term.Term, eq EqualFunc) bool {
	if pattern.IsVar() {
		if bound, ok := s.bound[pattern]; ok {
			return eq(bound, target)
		}
		s.Bind(pattern, target)
		return true
	}
	if eq(pattern, target) {
		return true
	}
	if target.IsVar() || pattern.Sym != target.Sym || pattern.Arity() != target.Arity() {
		return false
	}
	for i, pa := range pattern.Args {
		if !s.Match(pa, target.Args[i], eq) {
			return false
		}
	}
	return true
}
