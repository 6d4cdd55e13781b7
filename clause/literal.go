// Package clause implements the ordered-clause data model (literals,
// clauses, compact positions and the paramodulation position
// collectors) shared by the overlap index and the subsumption engine.
package clause

import "github.com/eprover-go/cladex/term"

// Literal is a signed, ordered equation (LTerm, RTerm). A
// non-equational atom P(t) is represented as P(t) = Top, with
// EquLiteral false.
type Literal struct {
	LTerm, RTerm *term.Term

	Positive   bool // sign
	EquLiteral bool // true for a genuine equation, false for P(t)=Top atoms
	Oriented   bool // term order decided LTerm ≻ RTerm; only that direction is tried
	Maximal    bool // maximal in the clause under the term/literal ordering
	Selected   bool // selected by the host's literal-selection strategy

	Next *Literal // singly-linked clause literal list
}

// Weight is LTerm.Weight + RTerm.Weight, the per-literal contribution
// to a clause's standard weight.
func (l *Literal) Weight() int {
	return l.LTerm.Weight + l.RTerm.Weight
}

// SameSignAndKind reports whether a and b agree on sign and the
// EquLiteral flag — a precondition the multi-literal matcher checks
// before attempting to match terms, mirroring PropsAreEquiv's
// (EPIsPositive|EPIsEquLiteral) mask. The unit matchers compare sign
// only.
func SameSignAndKind(a, b *Literal) bool {
	return a.Positive == b.Positive && a.EquLiteral == b.EquLiteral
}
