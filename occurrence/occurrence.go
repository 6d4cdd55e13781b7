// Package occurrence implements the subterm occurrence map (§4.2): for
// one representative subterm, an ordered mapping from clause identity
// to the set of compact positions at which it occurs in that clause.
package occurrence

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/google/btree"

	"github.com/eprover-go/cladex/clause"
)

// degree chosen the way bart sizes its own sparse containers: small
// enough that most occurrence maps (a handful of clauses per term)
// stay in one or two B-tree nodes.
const degree = 8

type entry struct {
	id        clause.ID
	positions *bitset.BitSet
}

func (e *entry) Less(than btree.Item) bool {
	return e.id < than.(*entry).id
}

// Map is the ordered (by clause.ID) clause -> position-set mapping
// for one representative term.
type Map struct {
	tree *btree.BTree
}

// New returns an empty occurrence Map.
func New() *Map {
	return &Map{tree: btree.New(degree)}
}

// Insert records that c occurs at pos. Duplicate (c, pos) pairs are
// idempotent.
func (m *Map) Insert(c clause.ID, pos clause.Pos) {
	probe := &entry{id: c}
	var e *entry
	if item := m.tree.Get(probe); item != nil {
		e = item.(*entry)
	} else {
		e = &entry{id: c, positions: bitset.New(0)}
		m.tree.ReplaceOrInsert(e)
	}
	e.positions.Set(uint(pos))
}

// Delete removes pos from c's position set; if that set becomes
// empty, c's entry is removed entirely. Deleting an absent (c, pos)
// pair is a silent no-op, by design (§7).
func (m *Map) Delete(c clause.ID, pos clause.Pos) {
	item := m.tree.Get(&entry{id: c})
	if item == nil {
		return
	}
	e := item.(*entry)
	e.positions.Clear(uint(pos))
	if e.positions.None() {
		m.tree.Delete(e)
	}
}

// DeleteClause drops c's entry wholesale, regardless of which
// positions it held. A silent no-op if c has no entry.
func (m *Map) DeleteClause(c clause.ID) {
	m.tree.Delete(&entry{id: c})
}

// Empty reports whether no clauses remain in m.
func (m *Map) Empty() bool {
	return m.tree.Len() == 0
}

// Positions returns the position set for c, or nil, false if c has no
// entry.
func (m *Map) Positions(c clause.ID) (*bitset.BitSet, bool) {
	item := m.tree.Get(&entry{id: c})
	if item == nil {
		return nil, false
	}
	return item.(*entry).positions, true
}

// Clauses returns every clause ID with at least one recorded
// position, in ascending order.
func (m *Map) Clauses() []clause.ID {
	ids := make([]clause.ID, 0, m.tree.Len())
	m.tree.Ascend(func(item btree.Item) bool {
		ids = append(ids, item.(*entry).id)
		return true
	})
	return ids
}
