// Package term implements hash-consed first-order terms with a cached
// standard weight, the shared L0 layer that the rest of cladex builds on.
package term

import "unsafe"

// DefaultFWeight and DefaultVWeight are the per-symbol weight
// contributions used by StandardWeight: every function symbol
// occurrence (including the implicit "head" of a compact position)
// costs DefaultFWeight, every variable occurrence costs DefaultVWeight.
const (
	DefaultFWeight = 1
	DefaultVWeight = 1
)

// Symbol is an opaque function-symbol code. Two terms with the same
// Symbol and the same Args (by pointer identity) are the same term
// after hash-consing.
type Symbol int32

// Term is a hash-consed term tree node. Terms minted by the same Bank
// for the same (Symbol, Args) are pointer-identical, so structural
// equality reduces to pointer comparison (TBTermEqual in the source
// material this is grounded on).
type Term struct {
	Sym    Symbol
	Args   []*Term
	Var    bool // true iff this is a variable leaf
	Weight int  // cached StandardWeight(t)
}

// IsVar reports whether t is a variable leaf.
func (t *Term) IsVar() bool { return t.Var }

// Arity returns the number of arguments of t (0 for variables and
// constants).
func (t *Term) Arity() int { return len(t.Args) }

// Equal is pointer equality: valid only for terms minted by the same
// Bank. Hosts that construct terms through any other path must not
// rely on it.
func Equal(a, b *Term) bool { return a == b }

func standardWeight(sym bool, args []*Term) int {
	if sym { // sym==true means "is a function symbol", not a var
		w := DefaultFWeight
		for _, a := range args {
			w += a.Weight
		}
		return w
	}
	return DefaultVWeight
}

// Bank hash-conses terms so that structurally equal terms share one
// *Term. The zero value is ready to use.
type Bank struct {
	vars  map[Symbol]*Term
	funcs map[Symbol]map[string]*Term // keyed by Symbol, then by arg-pointer fingerprint
	next  Symbol
}

// FreshVar mints (or returns, if one with this code already exists) the
// variable term for code v.
func (b *Bank) FreshVar(v Symbol) *Term {
	if b.vars == nil {
		b.vars = make(map[Symbol]*Term)
	}
	if t, ok := b.vars[v]; ok {
		return t
	}
	t := &Term{Sym: v, Var: true, Weight: DefaultVWeight}
	b.vars[v] = t
	return t
}

func uintptrOf(t *Term) uintptr { return uintptr(unsafe.Pointer(t)) }

// Addr returns a stable identity for t, usable as an ordered-map key
// by callers (fingerprint index payloads) that need to order
// hash-consed terms deterministically within one run.
func Addr(t *Term) uintptr { return uintptrOf(t) }

// argKey builds a stable string key from the pointer identities of
// args; hash-consed children guarantee distinct terms produce
// distinct keys.
func argKey(args []*Term) string {
	if len(args) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(args)*8)
	for _, a := range args {
		p := uintptrOf(a)
		for i := 0; i < 8; i++ {
			buf = append(buf, byte(p>>(8*i)))
		}
	}
	return string(buf)
}

// Intern returns the unique term for (sym, args), constructing it if
// this is the first time this shape has been seen. args must already
// be hash-consed terms from the same Bank.
func (b *Bank) Intern(sym Symbol, args ...*Term) *Term {
	if b.funcs == nil {
		b.funcs = make(map[Symbol]map[string]*Term)
	}
	bySym, ok := b.funcs[sym]
	if !ok {
		bySym = make(map[string]*Term)
		b.funcs[sym] = bySym
	}
	key := argKey(args)
	if t, ok := bySym[key]; ok {
		return t
	}
	cp := append([]*Term(nil), args...)
	t := &Term{
		Sym:  sym,
		Args: cp,
	}
	t.Weight = standardWeight(true, cp)
	bySym[key] = t
	return t
}
