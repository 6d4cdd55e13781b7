package fptrie

import (
	"testing"

	"github.com/eprover-go/cladex/clause"
	"github.com/eprover-go/cladex/term"
)

func TestGetOrCreateThenLookup(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	g := b.Intern(2, a)

	var ix Index
	occ := ix.GetOrCreate(g)
	occ.Insert(clause.ID(1), clause.Pos(0))

	got, ok := ix.Lookup(g)
	if !ok {
		t.Fatalf("expected g to be found after GetOrCreate")
	}
	if got != occ {
		t.Fatalf("Lookup must return the same occurrence map GetOrCreate returned")
	}
}

func TestLookupMissingTerm(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	c := b.Intern(2)

	var ix Index
	ix.GetOrCreate(a)

	if _, ok := ix.Lookup(c); ok {
		t.Fatalf("unrelated term must not be found")
	}
}

func TestPruneIfEmptyRemovesNodeAndIsIdempotent(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)

	var ix Index
	occ := ix.GetOrCreate(a)
	occ.Insert(1, 0)

	// not empty yet: prune must be a no-op
	ix.PruneIfEmpty(a)
	if _, ok := ix.Lookup(a); !ok {
		t.Fatalf("PruneIfEmpty must not touch a non-empty occurrence map")
	}

	occ.DeleteClause(1)
	ix.PruneIfEmpty(a)
	if _, ok := ix.Lookup(a); ok {
		t.Fatalf("PruneIfEmpty must remove the entry once its occurrence map is empty")
	}
	if !ix.Empty() {
		t.Fatalf("index must have no nodes left once its only term is pruned")
	}

	// idempotent: pruning again must not panic or corrupt state
	ix.PruneIfEmpty(a)
}

func TestDistinctTermsKeptSeparate(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	c := b.Intern(2)

	var ix Index
	oa := ix.GetOrCreate(a)
	oc := ix.GetOrCreate(c)
	oa.Insert(1, 0)
	oc.Insert(2, 0)

	ix.PruneIfEmpty(a) // occ not empty, no-op
	got, ok := ix.Lookup(c)
	if !ok || got != oc {
		t.Fatalf("unrelated term c must be unaffected by operations on a")
	}
}

func TestVariableFingerprintDoesNotCollideWithSymbol(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(1)
	c := b.Intern(2, b.Intern(3))

	var ix Index
	ox := ix.GetOrCreate(x)
	oc := ix.GetOrCreate(c)
	if ox == oc {
		t.Fatalf("a variable and a distinct ground term must not share an entry")
	}
}
