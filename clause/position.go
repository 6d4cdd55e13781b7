package clause

import "github.com/eprover-go/cladex/term"

// Pos is a compact position: a non-negative integer naming a subterm
// of a clause by cumulative standard-weight offset (§3/§4.1).
type Pos uint

// TermPos pairs a representative term with the compact position at
// which it occurs, the payload of the terms-with-positions collector
// mode.
type TermPos struct {
	Term *term.Term
	Pos  Pos
}

func termCollectInto(t *term.Term, seen map[*term.Term]bool, out *[]*term.Term) {
	if t.IsVar() {
		return
	}
	if !seen[t] {
		seen[t] = true
		*out = append(*out, t)
	}
	for _, a := range t.Args {
		termCollectInto(a, seen, out)
	}
}

func termCollectIntoPos(t *term.Term, pos Pos, out *[]TermPos) {
	if t.IsVar() {
		return
	}
	*out = append(*out, TermPos{Term: t, Pos: pos})
	pos += term.DefaultFWeight
	for _, a := range t.Args {
		termCollectIntoPos(a, pos, out)
		pos += Pos(a.Weight)
	}
}

// CollectIntoTerms returns the set (deduplicated, first-seen order)
// of paramod-into subterms of c: every non-variable subterm of the
// LTerm of every Maximal literal, plus subterms of RTerm when the
// literal is not Oriented. Used for deletion, where only the term
// identity (not its position) is needed.
func CollectIntoTerms(c *Clause) []*term.Term {
	seen := make(map[*term.Term]bool)
	var out []*term.Term
	for l := c.Literals; l != nil; l = l.Next {
		if !l.Maximal {
			continue
		}
		termCollectInto(l.LTerm, seen, &out)
		if !l.Oriented {
			termCollectInto(l.RTerm, seen, &out)
		}
	}
	return out
}

// CollectIntoTermsPos returns the (term, position) sequence for
// insertion: like CollectIntoTerms, but every occurrence is reported
// with its compact position and duplicates across distinct positions
// are preserved.
func CollectIntoTermsPos(c *Clause) []TermPos {
	var out []TermPos
	pos := Pos(0)
	for l := c.Literals; l != nil; l = l.Next {
		if l.Maximal {
			termCollectIntoPos(l.LTerm, pos, &out)
			if !l.Oriented {
				termCollectIntoPos(l.RTerm, pos+Pos(l.LTerm.Weight), &out)
			}
		}
		pos += Pos(l.Weight())
	}
	return out
}

// CollectFromTerms returns the set of paramod-from terms of c: the
// LTerm (and RTerm, if not Oriented) of every Maximal, Positive,
// non-Selected literal. Only the top of each such side qualifies — no
// descent.
func CollectFromTerms(c *Clause) []*term.Term {
	var out []*term.Term
	for l := c.Literals; l != nil; l = l.Next {
		if l.Maximal && l.Positive && !l.Selected {
			out = append(out, l.LTerm)
			if !l.Oriented {
				out = append(out, l.RTerm)
			}
		}
	}
	return out
}

// CollectFromTermsPos is CollectFromTerms with compact positions
// attached, used for insertion.
func CollectFromTermsPos(c *Clause) []TermPos {
	var out []TermPos
	pos := Pos(0)
	for l := c.Literals; l != nil; l = l.Next {
		if l.Maximal && l.Positive && !l.Selected {
			out = append(out, TermPos{Term: l.LTerm, Pos: pos})
			if !l.Oriented {
				out = append(out, TermPos{Term: l.RTerm, Pos: pos + Pos(l.LTerm.Weight)})
			}
		}
		pos += Pos(l.Weight())
	}
	return out
}

func decodeOffset(t *term.Term, offset Pos) *term.Term {
	if offset < term.DefaultFWeight {
		return t
	}
	offset -= term.DefaultFWeight
	for _, a := range t.Args {
		if offset < Pos(a.Weight) {
			return decodeOffset(a, offset)
		}
		offset -= Pos(a.Weight)
	}
	// offset lands exactly past the last argument: the term itself is
	// the closest valid answer (this only happens for an invalid pos).
	return t
}

// TermAt decodes pos back to the subterm of c it names, the inverse
// of the position collectors. Returns nil if pos does not name any
// literal of c.
func TermAt(c *Clause, pos Pos) *term.Term {
	litPos := Pos(0)
	for l := c.Literals; l != nil; l = l.Next {
		lw := Pos(l.Weight())
		if pos < litPos+lw {
			rel := pos - litPos
			lw := Pos(l.LTerm.Weight)
			if rel < lw {
				return decodeOffset(l.LTerm, rel)
			}
			return decodeOffset(l.RTerm, rel-lw)
		}
		litPos += lw
	}
	return nil
}
