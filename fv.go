package cladex

import (
	"github.com/eprover-go/cladex/clause"
	"github.com/eprover-go/cladex/internal/fvtrie"
	"github.com/eprover-go/cladex/term"
)

// FeatureVector computes a clause's monotone feature vector (§4.7): a
// fixed-length slice of non-negative integers such that if c subsumes
// d then FeatureVector(c, cfg) is componentwise <= FeatureVector(d,
// cfg). The layout is cfg.SymbolLimit+1 per-symbol occurrence counts
// (symbols at or beyond the limit collapse into one overflow bucket),
// followed by PosLitNo and NegLitNo.
func FeatureVector(c *clause.Clause, cfg Config) []int {
	n := cfg.SymbolLimit + 1
	fv := make([]int, n+2)
	for l := c.Literals; l != nil; l = l.Next {
		countSymbols(l.LTerm, cfg, fv[:n])
		countSymbols(l.RTerm, cfg, fv[:n])
	}
	fv[n] = c.PosLitNo
	fv[n+1] = c.NegLitNo
	return fv
}

func countSymbols(t *term.Term, cfg Config, buckets []int) {
	if t.IsVar() {
		return
	}
	idx := int(t.Sym)
	if idx < 0 || idx >= cfg.SymbolLimit {
		idx = cfg.SymbolLimit
	}
	buckets[idx]++
	for _, a := range t.Args {
		countSymbols(a, cfg, buckets)
	}
}

// FVLeq reports whether a is componentwise <= b; a and b must have the
// same length.
func FVLeq(a, b []int) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// FVIndex wraps internal/fvtrie with the clause-aware bookkeeping
// (feature-vector computation, and remembering each indexed clause's
// vector so Delete doesn't need the caller to recompute it from
// possibly-since-mutated literals).
type FVIndex struct {
	cfg  Config
	trie *fvtrie.Index
	byID map[clause.ID][]int
}

// NewFVIndex returns an empty FVIndex for the given configuration.
func NewFVIndex(cfg Config) *FVIndex {
	depth := cfg.SymbolLimit + 3
	return &FVIndex{
		cfg:  cfg,
		trie: fvtrie.New(depth),
		byID: make(map[clause.ID][]int),
	}
}

// Insert indexes c under its current feature vector.
func (ix *FVIndex) Insert(c *clause.Clause) {
	fv := FeatureVector(c, ix.cfg)
	ix.trie.Insert(fv, c.ClauseID)
	ix.byID[c.ClauseID] = fv
}

// Delete removes c, using the vector recorded at Insert time. A silent
// no-op if c was never indexed.
func (ix *FVIndex) Delete(c *clause.Clause) {
	fv, ok := ix.byID[c.ClauseID]
	if !ok {
		return
	}
	ix.trie.Delete(fv, c.ClauseID)
	delete(ix.byID, c.ClauseID)
}

// ForwardCandidates returns the indexed clause IDs whose feature
// vector is componentwise <= d's — the set of clauses that could
// possibly forward-subsume d.
func (ix *FVIndex) ForwardCandidates(d *clause.Clause) []clause.ID {
	return ix.trie.CandidatesLeq(FeatureVector(d, ix.cfg))
}

// BackwardCandidates returns the indexed clause IDs whose feature
// vector is componentwise >= c's — the set of clauses c could possibly
// backward-subsume.
func (ix *FVIndex) BackwardCandidates(c *clause.Clause) []clause.ID {
	return ix.trie.CandidatesGeq(FeatureVector(c, ix.cfg))
}

// Empty reports whether the index holds no entries at all.
func (ix *FVIndex) Empty() bool {
	return ix.trie.Empty()
}
