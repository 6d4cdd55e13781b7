package clause

import (
	"testing"

	"github.com/eprover-go/cladex/term"
)

// buildFGA builds the clause f(g(a)) = a as a single positive,
// maximal, unoriented literal — the running example from §8 scenario 5.
func buildFGA(b *term.Bank) (*Clause, *term.Term, *term.Term, *term.Term) {
	a := b.Intern(1)
	g := b.Intern(2, a)
	f := b.Intern(3, g)

	lit := mkEqLit(b, f, a, true, false /* unoriented */, true, false)

	var cl Clause
	cl.Append(lit)
	return &cl, f, g, a
}

func TestCollectIntoTermsPosAndDecodeRoundTrip(t *testing.T) {
	var b term.Bank
	cl, f, g, a := buildFGA(&b)

	tps := CollectIntoTermsPos(cl)
	if len(tps) == 0 {
		t.Fatalf("expected into-positions for f(g(a)) = a")
	}

	seen := map[*term.Term]Pos{}
	for _, tp := range tps {
		seen[tp.Term] = tp.Pos
	}

	for _, want := range []*term.Term{f, g} {
		pos, ok := seen[want]
		if !ok {
			t.Fatalf("term %v missing from into-positions", want)
		}
		if got := TermAt(cl, pos); got != want {
			t.Fatalf("TermAt(%d) = %v, want %v", pos, got, want)
		}
	}

	// a is a variable? no — a is a constant but variables are excluded,
	// not constants; a appears on the right side too (unoriented) and
	// inside g(a). Constants ARE non-variable subterms and must show up.
	if _, ok := seen[a]; !ok {
		t.Fatalf("constant subterm a must be collected (only variables are excluded)")
	}
}

func TestCollectFromTermsOnlyTopOfMaximalPositiveNonSelected(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	c := b.Intern(2)

	maximalPos := mkEqLit(&b, a, c, true, false, true, false)
	nonMaximal := mkEqLit(&b, c, a, true, false, false, false)
	negative := mkEqLit(&b, a, c, false, false, true, false)
	selected := mkEqLit(&b, a, c, true, false, true, true)

	var cl Clause
	cl.Append(maximalPos)
	cl.Append(nonMaximal)
	cl.Append(negative)
	cl.Append(selected)

	from := CollectFromTerms(&cl)
	// only maximalPos qualifies; unoriented, so both lterm and rterm.
	if len(from) != 2 {
		t.Fatalf("CollectFromTerms = %v, want 2 top terms from the one qualifying literal", from)
	}
	if from[0] != a || from[1] != c {
		t.Fatalf("CollectFromTerms = %v, want [a, c]", from)
	}
}

func TestCollectFromTermsOrientedOnlyLTerm(t *testing.T) {
	var b term.Bank
	a := b.Intern(1)
	c := b.Intern(2)

	oriented := mkEqLit(&b, a, c, true, true, true, false)

	var cl Clause
	cl.Append(oriented)

	from := CollectFromTerms(&cl)
	if len(from) != 1 || from[0] != a {
		t.Fatalf("CollectFromTerms(oriented) = %v, want [a]", from)
	}
}

func TestCollectIntoTermsExcludesVariables(t *testing.T) {
	var b term.Bank
	x := b.FreshVar(1)
	a := b.Intern(1)
	f := b.Intern(2, x, a)

	lit := mkEqLit(&b, f, f, true, true, true, false)
	var cl Clause
	cl.Append(lit)

	terms := CollectIntoTerms(&cl)
	for _, tm := range terms {
		if tm.IsVar() {
			t.Fatalf("variable subterm must never be collected as an into-term")
		}
	}
}
