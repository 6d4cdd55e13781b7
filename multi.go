package cladex

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/eprover-go/cladex/clause"
	"github.com/eprover-go/cladex/internal/assert"
	"github.com/eprover-go/cladex/subst"
	"github.com/eprover-go/cladex/term"
)

func literalSlice(c *clause.Clause) []*clause.Literal {
	out := make([]*clause.Literal, 0, c.LiteralNumber())
	for l := c.Literals; l != nil; l = l.Next {
		out = append(out, l)
	}
	return out
}

// matchLiteralOnto attempts to match pattern l onto candidate h with
// its own checkpointed substitution on s, trying both orientations
// unless l.Oriented restricts it to LTerm/RTerm order. An Oriented l
// can never match an unoriented h at all — h's own term order isn't
// settled, so there is nothing for l's fixed orientation to agree
// with — and that case is rejected before any match is attempted, not
// merely by skipping the flipped attempt. The substitution is left
// extended with l's bindings on success, rolled back on failure.
func matchLiteralOnto(s *subst.Stack, l, h *clause.Literal) bool {
	if l.Oriented && !h.Oriented {
		return false
	}
	cp := s.Checkpoint()
	if s.Match(l.LTerm, h.LTerm, term.Equal) && s.Match(l.RTerm, h.RTerm, term.Equal) {
		return true
	}
	s.Rollback(cp)
	if l.Oriented {
		return false
	}
	if s.Match(l.LTerm, h.RTerm, term.Equal) && s.Match(l.RTerm, h.LTerm, term.Equal) {
		return true
	}
	s.Rollback(cp)
	return false
}

// findSpecLiteral is find_spec_literal: does at least one literal of
// dLits look compatible with l (same sign, same EquLiteral kind, and
// matchable under some orientation) using a throwaway, immediately
// discarded substitution? This never commits a binding the caller can
// see — it exists purely to answer "is subsumption possible at all",
// distinct from the real backtracking search in recSubsume.
func findSpecLiteral(l *clause.Literal, dLits []*clause.Literal) bool {
	var probe subst.Stack
	for _, h := range dLits {
		if !clause.SameSignAndKind(l, h) {
			continue
		}
		if matchLiteralOnto(&probe, l, h) {
			return true
		}
	}
	return false
}

// checkSubsumptionPossibility is check_subsumption_possibility: every
// literal of cLits must have at least one compatible candidate in
// dLits, or the whole clause can never subsume regardless of how the
// recursive matcher backtracks. The caller gates this on the
// *candidate* d's literal counts (PosLitNo/NegLitNo >= 3), not c's —
// below that the cost of the check isn't worth saving a cheap
// recursive search.
func checkSubsumptionPossibility(cLits, dLits []*clause.Literal) bool {
	for _, l := range cLits {
		if !findSpecLiteral(l, dLits) {
			return false
		}
	}
	return true
}

// recSubsume is the recursive multiset matcher: cLits[0] must be
// matched onto some not-yet-picked literal of dLits, then the
// remainder of cLits is matched under the extended substitution and
// pick list. If the remainder fails after the straight orientation,
// the flipped orientation is tried (unless cLits[0] is Oriented).
// Backtracks (unpicking and rolling back the substitution) on failure
// before trying the next candidate.
func recSubsume(cLits, dLits []*clause.Literal, pick *bitset.BitSet, s *subst.Stack, stats *Stats) bool {
	if len(cLits) == 0 {
		return true
	}
	stats.ClauseClauseSubsumptionCallsRecursive++

	l := cLits[0]
	for i, h := range dLits {
		if pick.Test(uint(i)) || !clause.SameSignAndKind(l, h) {
			continue
		}
		if l.Oriented && !h.Oriented {
			continue
		}
		pick.Set(uint(i))
		cp := s.Checkpoint()
		if s.Match(l.LTerm, h.LTerm, term.Equal) && s.Match(l.RTerm, h.RTerm, term.Equal) &&
			recSubsume(cLits[1:], dLits, pick, s, stats) {
			return true
		}
		s.Rollback(cp)
		if !l.Oriented &&
			s.Match(l.LTerm, h.RTerm, term.Equal) && s.Match(l.RTerm, h.LTerm, term.Equal) &&
			recSubsume(cLits[1:], dLits, pick, s, stats) {
			return true
		}
		s.Rollback(cp)
		pick.Clear(uint(i))
	}
	return false
}

// ClauseSubsumesClause is clause_subsumes_clause: decides whether c
// subsumes d as a multiset of literals (every literal of c maps to a
// distinct literal of d, same sign and kind, under one common
// substitution). Cheap literal-count and weight rejections run first;
// the find_spec_literal possibility check runs next when d has three or
// more positive or negative literals; only then does the real
// backtracking search start. On success, d's SOS flag propagates onto
// c and sink is notified once.
func ClauseSubsumesClause(c, d *clause.Clause, stats *Stats, sink Sink) bool {
	assert.That(c.Weight == c.StandardWeight(), "subsumer clause's cached Weight is stale")
	assert.That(d.Weight == d.StandardWeight(), "candidate clause's cached Weight is stale")
	stats.ClauseClauseSubsumptionCalls++

	if c.PosLitNo > d.PosLitNo || c.NegLitNo > d.NegLitNo || c.Weight > d.Weight {
		return false
	}

	cLits := literalSlice(c)
	dLits := literalSlice(d)

	if (d.PosLitNo >= 3 || d.NegLitNo >= 3) && !checkSubsumptionPossibility(cLits, dLits) {
		return false
	}

	var s subst.Stack
	pick := bitset.New(uint(len(dLits)))
	if !recSubsume(cLits, dLits, pick, &s, stats) {
		return false
	}

	propagateSOS(c, d)
	sink.ClauseSubsumed(d, c, LevelSubsumption)
	return true
}
