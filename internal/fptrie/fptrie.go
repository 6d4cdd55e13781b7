// Package fptrie implements the fingerprint trie that backs the
// overlap index (§4.3): a trie keyed by a term's shape fingerprint,
// whose terminal payload is an ordered map from representative term
// to its subterm-occurrence entry.
package fptrie

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/google/btree"

	"github.com/eprover-go/cladex/occurrence"
	"github.com/eprover-go/cladex/term"
)

// Feature is one sampled fingerprint value. Non-negative values are
// function-symbol codes observed at the sampled position; the two
// named sentinels below stand in for variables and for positions that
// don't exist in a shallower term.
type Feature int64

const (
	// FeatVar marks a position that exists but is occupied by a
	// variable — a wildcard that can unify with anything rooted there.
	FeatVar Feature = -1
	// FeatAbsent marks a position that doesn't exist because an
	// ancestor's arity was too small to reach it.
	FeatAbsent Feature = -2
)

// samplePositions are the relative argument-index paths sampled to
// build a fingerprint, fixed for the life of an Index: root, first
// and second argument, and one level further down each. This mirrors
// the shallow, depth-bounded sampling scheme of the source material's
// fingerprint functions without committing to its exact table.
var samplePositions = [][]int{
	{},        // root symbol
	{0},       // first argument
	{1},       // second argument
	{0, 0},    // first argument of first argument
	{1, 0},    // first argument of second argument
}

// Depth is the fixed fingerprint length (and so the fixed trie depth).
const Depth = len(samplePositions)

func sampleAt(t *term.Term, path []int) Feature {
	cur := t
	for _, idx := range path {
		if cur.IsVar() {
			return FeatVar
		}
		if idx >= cur.Arity() {
			return FeatAbsent
		}
		cur = cur.Args[idx]
	}
	if cur.IsVar() {
		return FeatVar
	}
	return Feature(cur.Sym)
}

// Fingerprint computes t's shape fingerprint.
func Fingerprint(t *term.Term) []Feature {
	fp := make([]Feature, len(samplePositions))
	for i, path := range samplePositions {
		fp[i] = sampleAt(t, path)
	}
	return fp
}

type childEntry struct {
	feature Feature
	node    *Node
}

func (c *childEntry) Less(than btree.Item) bool {
	return c.feature < than.(*childEntry).feature
}

// TermEntry is the fingerprint trie's per-term payload: the
// representative term together with its subterm-occurrence map.
type TermEntry struct {
	addr uintptr
	Term *term.Term
	Occ  *occurrence.Map
}

func (e *TermEntry) Less(than btree.Item) bool {
	return e.addr < than.(*TermEntry).addr
}

// Node is one fingerprint-trie node. Non-leaf nodes branch on the
// next feature; a terminal node (reached once a term's full
// fingerprint has been consumed) holds the payload instead.
type Node struct {
	special               bitset.BitSet // bit 0: varChild present, bit 1: absentChild present
	varChild, absentChild *Node
	children              *btree.BTree // ordered map[Feature]*Node, concrete symbols only
	payload               *btree.BTree // ordered map[term-addr]*TermEntry, terminal nodes only
}

func (n *Node) child(feat Feature, create bool) *Node {
	switch feat {
	case FeatVar:
		if n.varChild == nil && create {
			n.varChild = &Node{}
			n.special.Set(0)
		}
		return n.varChild
	case FeatAbsent:
		if n.absentChild == nil && create {
			n.absentChild = &Node{}
			n.special.Set(1)
		}
		return n.absentChild
	default:
		if n.children == nil {
			if !create {
				return nil
			}
			n.children = btree.New(8)
		}
		if item := n.children.Get(&childEntry{feature: feat}); item != nil {
			return item.(*childEntry).node
		}
		if !create {
			return nil
		}
		nn := &Node{}
		n.children.ReplaceOrInsert(&childEntry{feature: feat, node: nn})
		return nn
	}
}

func (n *Node) removeChild(feat Feature) {
	switch feat {
	case FeatVar:
		n.varChild = nil
		n.special.Clear(0)
	case FeatAbsent:
		n.absentChild = nil
		n.special.Clear(1)
	default:
		if n.children != nil {
			n.children.Delete(&childEntry{feature: feat})
		}
	}
}

func (n *Node) isEmpty() bool {
	return n.varChild == nil && n.absentChild == nil &&
		(n.children == nil || n.children.Len() == 0) &&
		(n.payload == nil || n.payload.Len() == 0)
}

func (n *Node) termEntry(t *term.Term, create bool) *TermEntry {
	addr := term.Addr(t)
	if n.payload == nil {
		if !create {
			return nil
		}
		n.payload = btree.New(8)
	}
	if item := n.payload.Get(&TermEntry{addr: addr}); item != nil {
		return item.(*TermEntry)
	}
	if !create {
		return nil
	}
	e := &TermEntry{addr: addr, Term: t, Occ: occurrence.New()}
	n.payload.ReplaceOrInsert(e)
	return e
}

// Index is the fingerprint trie proper. The zero value is ready to use.
type Index struct {
	root Node
}

// GetOrCreate locates (creating along the way if necessary) the
// occurrence map for t's fingerprint node and term entry.
func (ix *Index) GetOrCreate(t *term.Term) *occurrence.Map {
	n := &ix.root
	for _, feat := range Fingerprint(t) {
		n = n.child(feat, true)
	}
	return n.termEntry(t, true).Occ
}

// Lookup returns t's occurrence map without creating anything.
func (ix *Index) Lookup(t *term.Term) (*occurrence.Map, bool) {
	n := &ix.root
	for _, feat := range Fingerprint(t) {
		n = n.child(feat, false)
		if n == nil {
			return nil, false
		}
	}
	e := n.termEntry(t, false)
	if e == nil {
		return nil, false
	}
	return e.Occ, true
}

// PruneIfEmpty removes t's term entry (and its fingerprint node path,
// upward while nodes become empty) if t's occurrence map is now
// empty. A silent no-op if t has no entry, or its occurrence map is
// not empty.
func (ix *Index) PruneIfEmpty(t *term.Term) {
	fp := Fingerprint(t)

	path := make([]*Node, 1, len(fp)+1)
	path[0] = &ix.root
	n := &ix.root
	for _, feat := range fp {
		n = n.child(feat, false)
		if n == nil {
			return
		}
		path = append(path, n)
	}

	e := n.termEntry(t, false)
	if e == nil || !e.Occ.Empty() {
		return
	}
	n.payload.Delete(e)

	for i := len(path) - 1; i > 0; i-- {
		if !path[i].isEmpty() {
			break
		}
		path[i-1].removeChild(fp[i-1])
	}
}

// Empty reports whether the index holds no entries at all.
func (ix *Index) Empty() bool {
	return ix.root.isEmpty()
}
