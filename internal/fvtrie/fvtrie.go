// Package fvtrie implements the feature-vector trie that backs the FV
// index (§4.7): a fixed-depth trie keyed by a clause's feature vector,
// whose nodes support the range queries ("every stored vector that is
// componentwise <= / >= a query vector") the subsumption search needs
// to prune candidates before the expensive recursive matcher runs.
package fvtrie

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/google/btree"

	"github.com/eprover-go/cladex/clause"
)

const degree = 8

// fastPresenceWidth bounds the values tracked by a node's bitset fast
// path; feature values at or above it still work, they just always
// fall through to the btree lookup.
const fastPresenceWidth = 64

type childEntry struct {
	value int
	node  *Node
}

func (c *childEntry) Less(than btree.Item) bool {
	return c.value < than.(*childEntry).value
}

type clauseEntry struct{ id clause.ID }

func (e *clauseEntry) Less(than btree.Item) bool {
	return e.id < than.(*clauseEntry).id
}

// Node is one level of the feature-vector trie. present fast-rejects
// child lookups for small values without touching the btree; children
// is the authoritative map[int]*Node for non-leaf nodes, clauses the
// authoritative clause-ID set for leaf nodes (depth == len(fv)).
type Node struct {
	present  bitset.BitSet
	children *btree.BTree
	clauses  *btree.BTree
}

func (n *Node) child(v int, create bool) *Node {
	fast := v >= 0 && v < fastPresenceWidth
	if fast && !create && !n.present.Test(uint(v)) {
		return nil
	}
	if n.children == nil {
		if !create {
			return nil
		}
		n.children = btree.New(degree)
	}
	if item := n.children.Get(&childEntry{value: v}); item != nil {
		return item.(*childEntry).node
	}
	if !create {
		return nil
	}
	nn := &Node{}
	n.children.ReplaceOrInsert(&childEntry{value: v, node: nn})
	if fast {
		n.present.Set(uint(v))
	}
	return nn
}

func (n *Node) removeChild(v int) {
	if n.children != nil {
		n.children.Delete(&childEntry{value: v})
	}
	if v >= 0 && v < fastPresenceWidth {
		n.present.Clear(uint(v))
	}
}

func (n *Node) addClause(id clause.ID) {
	if n.clauses == nil {
		n.clauses = btree.New(degree)
	}
	n.clauses.ReplaceOrInsert(&clauseEntry{id: id})
}

func (n *Node) removeClause(id clause.ID) {
	if n.clauses != nil {
		n.clauses.Delete(&clauseEntry{id: id})
	}
}

func (n *Node) isEmpty() bool {
	return (n.children == nil || n.children.Len() == 0) &&
		(n.clauses == nil || n.clauses.Len() == 0)
}

// Index is the feature-vector trie proper, fixed at depth.
type Index struct {
	root  Node
	depth int
}

// New returns an empty Index for vectors of the given fixed length.
func New(depth int) *Index {
	return &Index{depth: depth}
}

// Insert records id under the exact path fv (len(fv) must equal
// Index's depth).
func (ix *Index) Insert(fv []int, id clause.ID) {
	n := &ix.root
	for _, v := range fv {
		n = n.child(v, true)
	}
	n.addClause(id)
}

// Delete removes id from the exact path fv, pruning nodes that become
// empty back up to the root. A silent no-op if the path or id is
// absent.
func (ix *Index) Delete(fv []int, id clause.ID) {
	path := make([]*Node, 1, len(fv)+1)
	path[0] = &ix.root
	n := &ix.root
	for _, v := range fv {
		n = n.child(v, false)
		if n == nil {
			return
		}
		path = append(path, n)
	}
	n.removeClause(id)
	for i := len(path) - 1; i > 0; i-- {
		if !path[i].isEmpty() {
			break
		}
		path[i-1].removeChild(fv[i-1])
	}
}

// CandidatesLeq returns every stored clause ID whose feature vector is
// componentwise <= fv, the shape needed for forward subsumption
// ("which indexed clauses could possibly subsume a new clause with
// this vector?").
func (ix *Index) CandidatesLeq(fv []int) []clause.ID {
	var out []clause.ID
	collectLeq(&ix.root, fv, 0, &out)
	return out
}

func collectLeq(n *Node, fv []int, depth int, out *[]clause.ID) {
	if depth == len(fv) {
		if n.clauses != nil {
			n.clauses.Ascend(func(item btree.Item) bool {
				*out = append(*out, item.(*clauseEntry).id)
				return true
			})
		}
		return
	}
	if n.children == nil {
		return
	}
	n.children.DescendLessOrEqual(&childEntry{value: fv[depth]}, func(item btree.Item) bool {
		collectLeq(item.(*childEntry).node, fv, depth+1, out)
		return true
	})
}

// CandidatesGeq returns every stored clause ID whose feature vector is
// componentwise >= fv, the shape needed for backward subsumption
// ("which indexed clauses could this new clause possibly subsume?").
func (ix *Index) CandidatesGeq(fv []int) []clause.ID {
	var out []clause.ID
	collectGeq(&ix.root, fv, 0, &out)
	return out
}

func collectGeq(n *Node, fv []int, depth int, out *[]clause.ID) {
	if depth == len(fv) {
		if n.clauses != nil {
			n.clauses.Ascend(func(item btree.Item) bool {
				*out = append(*out, item.(*clauseEntry).id)
				return true
			})
		}
		return
	}
	if n.children == nil {
		return
	}
	n.children.AscendGreaterOrEqual(&childEntry{value: fv[depth]}, func(item btree.Item) bool {
		collectGeq(item.(*childEntry).node, fv, depth+1, out)
		return true
	})
}

// Empty reports whether the index holds no entries at all.
func (ix *Index) Empty() bool {
	return ix.root.isEmpty()
}
