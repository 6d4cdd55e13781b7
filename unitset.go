package cladex

import (
	"github.com/eprover-go/cladex/clause"
	"github.com/eprover-go/cladex/term"
)

// UnitIndex partitions the unit clauses of a clause set by sign, the
// minimal structure needed to drive forward unit subsumption (§4.5)
// independently of the rest of ClauseSet's bookkeeping.
type UnitIndex struct {
	pos []*clause.Clause
	neg []*clause.Clause
}

// NewUnitIndex returns an empty UnitIndex.
func NewUnitIndex() *UnitIndex {
	return &UnitIndex{}
}

// Insert records u, which must be a unit clause (exactly one literal).
func (ui *UnitIndex) Insert(u *clause.Clause) {
	if u.Literals.Positive {
		ui.pos = append(ui.pos, u)
	} else {
		ui.neg = append(ui.neg, u)
	}
}

// Remove drops u (matched by ClauseID) from the index. A silent no-op
// if u is not present, matching occurrence.Map's deletion contract.
func (ui *UnitIndex) Remove(u *clause.Clause) {
	ui.pos = removeClauseID(ui.pos, u.ClauseID)
	ui.neg = removeClauseID(ui.neg, u.ClauseID)
}

func removeClauseID(cs []*clause.Clause, id clause.ID) []*clause.Clause {
	for i, c := range cs {
		if c.ClauseID == id {
			return append(cs[:i], cs[i+1:]...)
		}
	}
	return cs
}

// weakSubsumesPair is the single-pass variant: t1/t2 are justified
// congruent iff some positive unit of the index top-subsumes the pair
// directly (eqnTopSubsumes against every member, with no descent into
// arguments, rather than unit_clause_set_strongsubsumes_termpair's
// transitive worklist).
func (ui *UnitIndex) weakSubsumesPair(t1, t2 *term.Term) (*clause.Clause, bool) {
	for _, u := range ui.pos {
		if eqnTopSubsumes(u.Literals, t1, t2) {
			return u, true
		}
	}
	return nil, false
}

type termPair struct{ t1, t2 *term.Term }

// strongSubsumesPair is unit_clause_set_strongsubsumes_termpair: an
// explicit worklist of term pairs still needing justification. A pair
// is discharged either by a direct weakSubsumesPair hit, or — failing
// that — by descending into its unique differing argument position
// and requiring that pair to be justified in turn. More than one
// differing argument position, or a head-symbol/arity mismatch, means
// the whole congruence chain fails. This mirrors the source material's
// PStack-based iteration rather than recursion, so the search depth is
// bounded by term size rather than Go call-stack depth.
func (ui *UnitIndex) strongSubsumesPair(t1, t2 *term.Term) (*clause.Clause, bool) {
	worklist := []termPair{{t1, t2}}
	var witness *clause.Clause
	for len(worklist) > 0 {
		n := len(worklist) - 1
		p := worklist[n]
		worklist = worklist[:n]

		if p.t1 == p.t2 {
			continue
		}
		if u, ok := ui.weakSubsumesPair(p.t1, p.t2); ok {
			witness = u
			continue
		}
		if p.t1.IsVar() || p.t2.IsVar() || p.t1.Sym != p.t2.Sym || p.t1.Arity() != p.t2.Arity() {
			return nil, false
		}
		var d1, d2 *term.Term
		for i := range p.t1.Args {
			if p.t1.Args[i] != p.t2.Args[i] {
				if d1 != nil {
					return nil, false
				}
				d1, d2 = p.t1.Args[i], p.t2.Args[i]
			}
		}
		if d1 != nil {
			worklist = append(worklist, termPair{d1, d2})
		}
	}
	return witness, true
}

// eqnClauseSetSubsumesPair dispatches to the strong or weak variant per
// cfg.StrongUnitForwardSubsumption (§9's lifted configuration).
func (ui *UnitIndex) eqnClauseSetSubsumesPair(cfg Config, t1, t2 *term.Term) (*clause.Clause, bool) {
	if cfg.StrongUnitForwardSubsumption {
		return ui.strongSubsumesPair(t1, t2)
	}
	return ui.weakSubsumesPair(t1, t2)
}

// UnitClauseSetSubsumesClause reports whether any unit clause held by
// ui subsumes d: a positive literal of d is checked against the
// positive units (strong or weak, per cfg); a negative literal is
// checked against each negative unit by a direct top-match probe
// (eqnTopSubsumes), the same FindSignedTopSimplifyingUnit-style scan
// the source material runs at the set level (ccl_subsumption.c:100-143)
// — deliberately not a re-scan through LiteralSubsumesClause, whose
// pinned negative/negative short-circuit (§8/§9) would make this branch
// dead code if reused here.
func (ui *UnitIndex) UnitClauseSetSubsumesClause(cfg Config, d *clause.Clause, sink Sink) bool {
	for h := d.Literals; h != nil; h = h.Next {
		if h.Positive {
			if u, ok := ui.eqnClauseSetSubsumesPair(cfg, h.LTerm, h.RTerm); ok {
				propagateSOS(u, d)
				sink.ClauseSubsumed(d, u, LevelSubsumption)
				return true
			}
			continue
		}
		for _, u := range ui.neg {
			if eqnTopSubsumes(u.Literals, h.LTerm, h.RTerm) {
				propagateSOS(u, d)
				sink.ClauseSubsumed(d, u, LevelSubsumption)
				return true
			}
		}
	}
	return false
}
