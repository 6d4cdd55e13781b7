package cladex

// Config is the per-run configuration threaded explicitly through
// ClauseSet and the subsumption entry points, in place of the source
// material's process-wide StrongUnitForwardSubsumption global (§9's
// design note: "lift into the clause-set or a per-run configuration
// struct passed down the call stack; avoid process-wide state").
type Config struct {
	// StrongUnitForwardSubsumption selects the strong (descending,
	// congruence-closure-style) variant of positive unit forward
	// subsumption over the weak (single top-level lookup) variant
	// (§4.5). Changing it between runs is legal; it never corrupts
	// index state, only which subsumptions succeed.
	StrongUnitForwardSubsumption bool

	// SymbolLimit bounds the feature-vector computation (§4.7): the
	// number of distinct function symbols tracked by per-symbol
	// frequency features. Symbols beyond the limit are folded into a
	// single overflow feature.
	SymbolLimit int
}

// DefaultConfig matches the source material's documented default
// (StrongUnitForwardSubsumption off) with a modest symbol budget.
func DefaultConfig() Config {
	return Config{
		StrongUnitForwardSubsumption: false,
		SymbolLimit:                  16,
	}
}
