package cladex

import (
	"github.com/eprover-go/cladex/clause"
	"github.com/eprover-go/cladex/internal/assert"
	"github.com/eprover-go/cladex/subst"
	"github.com/eprover-go/cladex/term"
)

// eqnTopSubsumes attempts to match l directly onto the pair (t1, t2),
// trying both orientations of l (l.LTerm⇝t1 ∧ l.RTerm⇝t2, then
// l.LTerm⇝t2 ∧ l.RTerm⇝t1) unless l is Oriented, in which case only
// the first is tried. Each attempt gets its own fully-backtracked
// substitution (eqn_topsubsumes_termpair).
func eqnTopSubsumes(l *clause.Literal, t1, t2 *term.Term) bool {
	var s subst.Stack
	cp := s.Checkpoint()
	if s.Match(l.LTerm, t1, term.Equal) && s.Match(l.RTerm, t2, term.Equal) {
		return true
	}
	s.Rollback(cp)
	if l.Oriented {
		return false
	}
	if s.Match(l.LTerm, t2, term.Equal) && s.Match(l.RTerm, t1, term.Equal) {
		return true
	}
	s.Rollback(cp)
	return false
}

// eqnSubsumes is eqn_subsumes_termpair: if l does not top-subsume
// (t1, t2), and t1/t2 are function terms with the same head symbol,
// descend into the unique pair of differing argument positions and
// retry there. More than one differing argument position means l
// cannot subsume the pair at all (a unit equation can only rewrite a
// single position).
func eqnSubsumes(l *clause.Literal, t1, t2 *term.Term) bool {
	for {
		if eqnTopSubsumes(l, t1, t2) {
			return true
		}
		if t1.IsVar() || t2.IsVar() || t1.Sym != t2.Sym || t1.Arity() != t2.Arity() {
			return false
		}
		var d1, d2 *term.Term
		for i := range t1.Args {
			if t1.Args[i] != t2.Args[i] {
				if d1 != nil {
					return false
				}
				d1, d2 = t1.Args[i], t2.Args[i]
			}
		}
		if d1 == nil {
			return true
		}
		t1, t2 = d1, d2
	}
}

// LiteralSubsumesClause decides whether unit literal l subsumes
// clause d, literal by literal:
//
//   - l positive: succeeds if any positive literal h of d has
//     eqnSubsumes(l, h.LTerm, h.RTerm). Equational rewriting at a
//     single position is allowed to reach the match, since a positive
//     unit equation justifies subsuming any clause containing a
//     consequence of one rewrite.
//   - l negative: the source material's negative/negative case is a
//     mere top-level congruence check (eqnTopSubsumes, no descent),
//     and on a successful top-match this returns false immediately
//     rather than continuing to the next literal of d; a failed
//     top-match moves on to the next literal. This branch never
//     returns true.
//     This short-circuit is preserved verbatim per the pinned design
//     decision; do not "fix" it into a full scan.
func LiteralSubsumesClause(l *clause.Literal, d *clause.Clause) bool {
	for h := d.Literals; h != nil; h = h.Next {
		if l.Positive != h.Positive {
			continue
		}
		if l.Positive {
			if eqnSubsumes(l, h.LTerm, h.RTerm) {
				return true
			}
			continue
		}
		if eqnTopSubsumes(l, h.LTerm, h.RTerm) {
			return false
		}
	}
	return false
}

// UnitClauseSubsumesClause is the public unit-clause entry point: u
// must be a unit clause (single literal). On success it propagates
// d's SOS flag onto u and reports the hit to sink.
func UnitClauseSubsumesClause(u, d *clause.Clause, sink Sink) bool {
	assert.That(u.LiteralNumber() == 1, "UnitClauseSubsumesClause called with a non-unit clause")
	assert.That(d.Weight == d.StandardWeight(), "candidate clause's cached Weight is stale")
	if !LiteralSubsumesClause(u.Literals, d) {
		return false
	}
	propagateSOS(u, d)
	sink.ClauseSubsumed(d, u, LevelSubsumption)
	return true
}
