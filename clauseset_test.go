package cladex

import (
	"testing"

	"github.com/eprover-go/cladex/clause"
	"github.com/eprover-go/cladex/term"
)

func TestClauseSetForwardSubsumptionViaUnit(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(-1)
	a := b.Intern(1)
	fx := b.Intern(2, x)
	fa := b.Intern(2, a)

	cs := NewClauseSet(DefaultConfig(), nil)
	u := unitClause(1, &clause.Literal{LTerm: fx, RTerm: x, Positive: true, EquLiteral: true})
	cs.Insert(u)

	d := unitClause(2, &clause.Literal{LTerm: fa, RTerm: a, Positive: true, EquLiteral: true})
	if !cs.ClauseSetSubsumesClause(d) {
		t.Fatalf("expected f(x)=x already in the set to subsume f(a)=a")
	}
}

func TestClauseSetBackwardSubsumptionFindsMultiple(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(-1)
	a := b.Intern(1)
	c2 := b.Intern(5)
	fx := b.Intern(2, x)
	fa := b.Intern(2, a)
	fc := b.Intern(2, c2)

	cs := NewClauseSet(DefaultConfig(), nil)
	d1 := unitClause(1, &clause.Literal{LTerm: fa, RTerm: a, Positive: true, EquLiteral: true})
	d2 := unitClause(2, &clause.Literal{LTerm: fc, RTerm: c2, Positive: true, EquLiteral: true})
	cs.Insert(d1)
	cs.Insert(d2)

	u := unitClause(3, &clause.Literal{LTerm: fx, RTerm: x, Positive: true, EquLiteral: true})
	got := cs.ClauseSetFindSubsumedClauses(u)
	if len(got) != 2 {
		t.Fatalf("expected both d1 and d2 subsumed by f(x)=x, got %d", len(got))
	}
}

func TestClauseSetFindUnitSubsumedClauseResumesFromPosition(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	c2 := b.Intern(5)
	top := b.Intern(0)

	cs := NewClauseSet(DefaultConfig(), nil)
	d1 := &clause.Clause{ClauseID: 1}
	d1.Append(&clause.Literal{LTerm: a, RTerm: top, Positive: true})
	d2 := &clause.Clause{ClauseID: 2}
	d2.Append(&clause.Literal{LTerm: a, RTerm: top, Positive: true})
	cs.Insert(d1)
	cs.Insert(d2)

	u := unitClause(3, &clause.Literal{LTerm: a, RTerm: top, Positive: true})

	first, ok := cs.ClauseSetFindUnitSubsumedClause(u, nil)
	if !ok || first.ClauseID != d1.ClauseID {
		t.Fatalf("expected first hit to be d1, got %v ok=%v", first, ok)
	}

	second, ok := cs.ClauseSetFindUnitSubsumedClause(u, first)
	if !ok || second.ClauseID != d2.ClauseID {
		t.Fatalf("expected resumed scan to find d2 next, got %v ok=%v", second, ok)
	}

	_, ok = cs.ClauseSetFindUnitSubsumedClause(u, second)
	if ok {
		t.Fatalf("expected no further hits after scanning the whole list")
	}
}

func TestClausePositiveSimplifyReflectSplicesNegativeLiteral(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	top := b.Intern(0)

	cs := NewClauseSet(DefaultConfig(), nil)
	pos := unitClause(1, &clause.Literal{LTerm: a, RTerm: top, Positive: true})
	cs.Insert(pos)

	c := &clause.Clause{ClauseID: 2}
	c.Append(&clause.Literal{LTerm: a, RTerm: top, Positive: false})

	cs.ClausePositiveSimplifyReflect(c)

	if !c.Empty() {
		t.Fatalf("expected the negative literal to be spliced out by the positive unit, clause still has literals")
	}
}

func TestClauseNegativeSimplifyReflectSplicesPositiveLiteral(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	top := b.Intern(0)

	cs := NewClauseSet(DefaultConfig(), nil)
	neg := unitClause(1, &clause.Literal{LTerm: a, RTerm: top, Positive: false})
	cs.Insert(neg)

	c := &clause.Clause{ClauseID: 2}
	c.Append(&clause.Literal{LTerm: a, RTerm: top, Positive: true})

	cs.ClauseNegativeSimplifyReflect(c)

	if !c.Empty() {
		t.Fatalf("expected the positive literal to be spliced out by the negative unit, clause still has literals")
	}
}

func TestClauseNegativeSimplifyReflectLeavesNonMatchingLiteralAlone(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	c2 := b.Intern(5)
	top := b.Intern(0)

	cs := NewClauseSet(DefaultConfig(), nil)
	neg := unitClause(1, &clause.Literal{LTerm: a, RTerm: top, Positive: false})
	cs.Insert(neg)

	c := &clause.Clause{ClauseID: 2}
	c.Append(&clause.Literal{LTerm: c2, RTerm: top, Positive: true})

	cs.ClauseNegativeSimplifyReflect(c)

	if c.Empty() {
		t.Fatalf("literal over an unrelated constant must survive simplify-reflect")
	}
}

func TestClauseSetInsertRemoveRoundTrip(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	top := b.Intern(0)

	cs := NewClauseSet(DefaultConfig(), nil)
	c := unitClause(1, &clause.Literal{LTerm: a, RTerm: top, Positive: true})
	cs.Insert(c)
	if cs.Len() != 1 {
		t.Fatalf("expected len 1 after insert")
	}
	cs.Remove(c)
	if cs.Len() != 0 {
		t.Fatalf("expected len 0 after remove")
	}
	if !cs.fv.Empty() {
		t.Fatalf("expected FV index empty after remove")
	}
}
