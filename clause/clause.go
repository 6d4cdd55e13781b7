package clause

// ID is a clause's identity for ordered containers (the subterm
// occurrence map, FV index leaves). Hosts are responsible for handing
// out distinct, stable IDs; cladex never mints them itself.
type ID uint64

// Clause is a singly-linked ordered sequence of literals with a
// cached weight and literal-sign counts. The cached Weight must equal
// StandardWeight() whenever the clause is offered to the subsumption
// engine (checked by assert.That in ClauseSubsumesClause and
// UnitClauseSubsumesClause).
type Clause struct {
	ClauseID ID
	Literals *Literal

	Weight   int
	PosLitNo int
	NegLitNo int

	SOS bool // set-of-support membership
}

// LiteralNumber counts the literals of c by walking the list.
func (c *Clause) LiteralNumber() int {
	n := 0
	for l := c.Literals; l != nil; l = l.Next {
		n++
	}
	return n
}

// StandardWeight recomputes Σ literal weights from scratch; used to
// validate the Weight cache invariant.
func (c *Clause) StandardWeight() int {
	w := 0
	for l := c.Literals; l != nil; l = l.Next {
		w += l.Weight()
	}
	return w
}

// Recount recomputes Weight, PosLitNo and NegLitNo from the current
// literal list. Callers of RemoveLiteralAt must call this (or
// maintain the counters incrementally, as RemoveLiteralAt itself
// does) before the clause is reused by the subsumption engine.
func (c *Clause) Recount() {
	w, pos, neg := 0, 0, 0
	for l := c.Literals; l != nil; l = l.Next {
		w += l.Weight()
		if l.Positive {
			pos++
		} else {
			neg++
		}
	}
	c.Weight, c.PosLitNo, c.NegLitNo = w, pos, neg
}

// Append adds l to the end of c's literal list and folds it into the
// cached Weight/PosLitNo/NegLitNo counters. Only meant for building
// clauses (tests, parsers); the subsumption hot path never mutates a
// clause's literal count this way.
func (c *Clause) Append(l *Literal) {
	l.Next = nil
	if c.Literals == nil {
		c.Literals = l
	} else {
		last := c.Literals
		for last.Next != nil {
			last = last.Next
		}
		last.Next = l
	}
	c.Weight += l.Weight()
	if l.Positive {
		c.PosLitNo++
	} else {
		c.NegLitNo++
	}
}

// RemoveLiteralAt splices the literal currently pointed to by *prev
// out of the clause and updates the cached weight/counters in place,
// mirroring ClauseRemoveLiteral(clause, handle): callers walk the
// list with a **Literal cursor so the splice doesn't require a
// separate "previous" pointer.
func (c *Clause) RemoveLiteralAt(prev **Literal) {
	victim := *prev
	*prev = victim.Next
	c.Weight -= victim.Weight()
	if victim.Positive {
		c.PosLitNo--
	} else {
		c.NegLitNo--
	}
}

// Empty reports whether c has no literals left (the simplify-reflect
// functions return this after splicing literals out).
func (c *Clause) Empty() bool { return c.Literals == nil }
