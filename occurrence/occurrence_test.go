package occurrence

import (
	"testing"

	"github.com/eprover-go/cladex/clause"
)

func TestInsertThenDelete(t *testing.T) {
	m := New()
	m.Insert(1, 0)
	m.Insert(1, 5)
	m.Insert(2, 3)

	if m.Empty() {
		t.Fatalf("map must not be empty after inserts")
	}

	pos, ok := m.Positions(1)
	if !ok {
		t.Fatalf("expected clause 1 to have an entry")
	}
	if !pos.Test(0) || !pos.Test(5) {
		t.Fatalf("expected positions 0 and 5 set for clause 1")
	}

	m.Delete(1, 0)
	pos, ok = m.Positions(1)
	if !ok || pos.Test(0) || !pos.Test(5) {
		t.Fatalf("Delete(1,0) must remove only position 0")
	}

	m.Delete(1, 5)
	if _, ok := m.Positions(1); ok {
		t.Fatalf("clause 1 entry must vanish once its position set is empty")
	}
	if m.Empty() {
		t.Fatalf("clause 2 entry must remain")
	}
}

func TestDeleteClauseWholesale(t *testing.T) {
	m := New()
	m.Insert(1, 0)
	m.Insert(1, 1)
	m.Insert(1, 2)

	m.DeleteClause(1)
	if !m.Empty() {
		t.Fatalf("DeleteClause must drop all positions at once")
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	m := New()
	m.Delete(99, 0)     // no clause at all
	m.Insert(1, 0)
	m.Delete(1, 7)      // clause present, position absent
	m.DeleteClause(404) // absent clause
	if m.Empty() {
		t.Fatalf("unrelated no-op deletes must not disturb existing entries")
	}
}

func TestClausesAscending(t *testing.T) {
	m := New()
	for _, id := range []clause.ID{5, 1, 3} {
		m.Insert(id, 0)
	}
	ids := m.Clauses()
	want := []clause.ID{1, 3, 5}
	if len(ids) != len(want) {
		t.Fatalf("Clauses() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Clauses() = %v, want %v", ids, want)
		}
	}
}
