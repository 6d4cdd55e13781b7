// Package cladex is the clause indexing and subsumption core of a
// saturation-based equational theorem prover: an overlap
// (paramodulation) index over clause subterms, and a clause
// subsumption engine with a unit fast path, a recursive multi-literal
// matcher, and a feature-vector index that prunes candidates.
package cladex

import (
	"github.com/eprover-go/cladex/clause"
	"github.com/eprover-go/cladex/internal/fptrie"
	"github.com/eprover-go/cladex/occurrence"
	"github.com/eprover-go/cladex/term"
)

// OverlapIndex maps subterms of indexed clauses to the (clause,
// position) pairs at which they occur (§4.3). The zero value is ready
// to use.
type OverlapIndex struct {
	fp fptrie.Index
}

// InsertPos locates or creates the fingerprint node for t (decoding it
// from (c, pos) if t is nil) and records (c, pos) in its occurrence
// map.
func (ix *OverlapIndex) InsertPos(c *clause.Clause, pos clause.Pos, t *term.Term) {
	if t == nil {
		t = clause.TermAt(c, pos)
	}
	ix.fp.GetOrCreate(t).Insert(c.ClauseID, pos)
}

// DeletePos removes the (c, pos) association for t, pruning empty
// containers upward. Silent no-op if t (or the (c, pos) pair) is
// absent.
func (ix *OverlapIndex) DeletePos(c *clause.Clause, pos clause.Pos, t *term.Term) {
	if t == nil {
		t = clause.TermAt(c, pos)
	}
	occ, ok := ix.fp.Lookup(t)
	if !ok {
		return
	}
	occ.Delete(c.ClauseID, pos)
	ix.fp.PruneIfEmpty(t)
}

// DeleteClauseOcc removes every (c, *) association reachable through
// t's fingerprint node, regardless of position. Silent no-op if t is
// absent.
func (ix *OverlapIndex) DeleteClauseOcc(c *clause.Clause, t *term.Term) {
	occ, ok := ix.fp.Lookup(t)
	if !ok {
		return
	}
	occ.DeleteClause(c.ClauseID)
	ix.fp.PruneIfEmpty(t)
}

// InsertIntoClause indexes every paramod-into (term, position) pair of
// c.
func (ix *OverlapIndex) InsertIntoClause(c *clause.Clause) {
	for _, tp := range clause.CollectIntoTermsPos(c) {
		ix.InsertPos(c, tp.Pos, tp.Term)
	}
}

// InsertFromClause indexes every paramod-from (term, position) pair of
// c.
func (ix *OverlapIndex) InsertFromClause(c *clause.Clause) {
	for _, tp := range clause.CollectFromTermsPos(c) {
		ix.InsertPos(c, tp.Pos, tp.Term)
	}
}

// DeleteIntoClause removes every association c contributed as a
// paramod-into target.
func (ix *OverlapIndex) DeleteIntoClause(c *clause.Clause) {
	for _, t := range clause.CollectIntoTerms(c) {
		ix.DeleteClauseOcc(c, t)
	}
}

// DeleteFromClause removes every association c contributed as a
// paramod-from source.
func (ix *OverlapIndex) DeleteFromClause(c *clause.Clause) {
	for _, t := range clause.CollectFromTerms(c) {
		ix.DeleteClauseOcc(c, t)
	}
}

// Lookup returns t's occurrence map, for hosts searching for
// paramodulation partners.
func (ix *OverlapIndex) Lookup(t *term.Term) (*occurrence.Map, bool) {
	return ix.fp.Lookup(t)
}

// Empty reports whether the index holds no entries at all.
func (ix *OverlapIndex) Empty() bool {
	return ix.fp.Empty()
}
