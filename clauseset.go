package cladex

import "github.com/eprover-go/cladex/clause"

// clauseNode is one link of ClauseSet's doubly-linked, sentinel-anchored
// clause list, which backs the "resume from a clause" scans (§6's
// ClauseSetFindUnitSubsumedClause note) that a plain map can't support.
type clauseNode struct {
	c          *clause.Clause
	prev, next *clauseNode
}

// ClauseSet is the top-level set-of-clauses driver (§4.8): a
// doubly-linked clause list for ordered scans, a map for O(1)
// membership and removal, a UnitIndex for the unit fast path, and an
// FVIndex that prunes candidates before the full recursive matcher in
// multi.go runs. A ClauseSet must be built with NewClauseSet; the zero
// value is not ready to use (its sentinel ring isn't linked).
type ClauseSet struct {
	anchor clauseNode
	index  map[clause.ID]*clauseNode

	units *UnitIndex
	fv    *FVIndex

	cfg   Config
	sink  Sink
	stats Stats
}

// NewClauseSet returns an empty ClauseSet. A nil sink is replaced with
// NoopSink.
func NewClauseSet(cfg Config, sink Sink) *ClauseSet {
	if sink == nil {
		sink = NoopSink
	}
	cs := &ClauseSet{
		index: make(map[clause.ID]*clauseNode),
		units: NewUnitIndex(),
		fv:    NewFVIndex(cfg),
		cfg:   cfg,
		sink:  sink,
	}
	cs.anchor.next = &cs.anchor
	cs.anchor.prev = &cs.anchor
	return cs
}

// Len reports the number of clauses currently held.
func (cs *ClauseSet) Len() int { return len(cs.index) }

// Stats returns the set's running subsumption counters.
func (cs *ClauseSet) Stats() *Stats { return &cs.stats }

// Insert adds c to the set (list tail, unit index if c is a unit
// clause, FV index always). A silent no-op if c.ClauseID is already
// present.
func (cs *ClauseSet) Insert(c *clause.Clause) {
	if _, exists := cs.index[c.ClauseID]; exists {
		return
	}
	n := &clauseNode{c: c}
	last := cs.anchor.prev
	last.next = n
	n.prev = last
	n.next = &cs.anchor
	cs.anchor.prev = n
	cs.index[c.ClauseID] = n

	if c.LiteralNumber() == 1 {
		cs.units.Insert(c)
	}
	cs.fv.Insert(c)
}

// Remove drops c from the set entirely. A silent no-op if c is absent.
func (cs *ClauseSet) Remove(c *clause.Clause) {
	n, ok := cs.index[c.ClauseID]
	if !ok {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	delete(cs.index, c.ClauseID)

	if c.LiteralNumber() == 1 {
		cs.units.Remove(c)
	}
	cs.fv.Delete(c)
}

// ClauseSetSubsumesClause is forward subsumption: does any clause
// already in cs subsume d? Units are checked first (cheapest), then
// the FV index narrows the remaining non-unit clauses down to those
// whose vector is componentwise <= d's before the recursive matcher in
// multi.go is ever invoked.
func (cs *ClauseSet) ClauseSetSubsumesClause(d *clause.Clause) bool {
	if cs.units.UnitClauseSetSubsumesClause(cs.cfg, d, cs.sink) {
		return true
	}
	for _, id := range cs.fv.ForwardCandidates(d) {
		n, ok := cs.index[id]
		if !ok || id == d.ClauseID {
			continue
		}
		c := n.c
		if c.LiteralNumber() == 1 {
			continue // already covered by the unit scan above
		}
		if ClauseSubsumesClause(c, d, &cs.stats, cs.sink) {
			return true
		}
	}
	return false
}

// ClauseSetFindSubsumedClauses is backward subsumption: every clause
// already in cs that c subsumes, found by narrowing through the FV
// index to clauses whose vector is componentwise >= c's.
func (cs *ClauseSet) ClauseSetFindSubsumedClauses(c *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for _, id := range cs.fv.BackwardCandidates(c) {
		n, ok := cs.index[id]
		if !ok || id == c.ClauseID {
			continue
		}
		d := n.c
		switch {
		case c.LiteralNumber() == 1 && LiteralSubsumesClause(c.Literals, d):
			propagateSOS(c, d)
			cs.sink.ClauseSubsumed(d, c, LevelSubsumption)
			out = append(out, d)
		case c.LiteralNumber() != 1 && ClauseSubsumesClause(c, d, &cs.stats, cs.sink):
			out = append(out, d)
		}
	}
	return out
}

// ClauseSetFindUnitSubsumedClause scans cs for the first clause (after
// from, or from the head if from is nil) that unit clause u subsumes,
// so a host can resume a linear forward-subsumption scan across
// several candidate units without re-walking clauses already checked
// against a previous one (§6's preserved "resume from position"
// signature). Returns ok=false, with a nil clause, once the scan
// reaches the end without a hit; a from not currently in the set also
// reports ok=false.
func (cs *ClauseSet) ClauseSetFindUnitSubsumedClause(u *clause.Clause, from *clause.Clause) (*clause.Clause, bool) {
	start := cs.anchor.next
	if from != nil {
		n, ok := cs.index[from.ClauseID]
		if !ok {
			return nil, false
		}
		start = n.next
	}
	for n := start; n != &cs.anchor; n = n.next {
		d := n.c
		if d.ClauseID == u.ClauseID {
			continue
		}
		if LiteralSubsumesClause(u.Literals, d) {
			propagateSOS(u, d)
			cs.sink.ClauseSubsumed(d, u, LevelSubsumption)
			return d, true
		}
	}
	return nil, false
}

// simplifyReflect splices every literal of c whose sign is the
// opposite of usePositiveUnits out of c, provided some unit clause
// drawn from the named side top-subsumes it: a negative literal
// s≠t is redundant once a positive unit asserts s'=t' with s'=t'
// matching s=t, and symmetrically a positive literal is redundant
// once a negative unit's s'≠t' matches it. Each splice marks c as
// set-of-support if the unit used is. If c is itself indexed in
// cs, callers must Remove and re-Insert it afterward — c's cached
// feature vector does not update itself.
func simplifyReflect(cs *ClauseSet, c *clause.Clause, usePositiveUnits bool) {
	units := cs.units.pos
	target := false // positive units discharge negative literals
	if !usePositiveUnits {
		units = cs.units.neg
		target = true // negative units discharge positive literals
	}

	cur := &c.Literals
	for *cur != nil {
		h := *cur
		if h.Positive != target {
			cur = &h.Next
			continue
		}
		spliced := false
		for _, u := range units {
			if eqnTopSubsumes(u.Literals, h.LTerm, h.RTerm) {
				c.RemoveLiteralAt(cur)
				if u.SOS {
					c.SOS = true
				}
				cs.sink.ClauseSubsumed(c, u, LevelSimplify)
				spliced = true
				break
			}
		}
		if !spliced {
			cur = &h.Next
		}
	}
}

// ClausePositiveSimplifyReflect removes every negative literal of c
// that a positive unit of cs top-subsumes ("remove all negative
// literals subsumed by the positive unit clauses").
func (cs *ClauseSet) ClausePositiveSimplifyReflect(c *clause.Clause) {
	simplifyReflect(cs, c, true)
}

// ClauseNegativeSimplifyReflect removes every positive literal of c
// that a negative unit of cs top-subsumes ("remove all positive
// literals subsumed by negative unit clauses").
func (cs *ClauseSet) ClauseNegativeSimplifyReflect(c *clause.Clause) {
	simplifyReflect(cs, c, false)
}
