package cladex

import "github.com/eprover-go/cladex/clause"

// Level mirrors the source material's proof-recording "output level"
// — a coarse verbosity tier the host uses to decide whether to render
// a Sink call at all.
type Level int

// Subsumption-related levels, matching the verbosity the source
// material assigns clause-subsumption quotes (level 6) versus
// simplify-reflect modifications (its own, separate level constant).
const (
	LevelSubsumption Level = 6
	LevelSimplify     Level = 1
)

// Sink receives a (subsumed, witness, level) tuple whenever a
// subsumption check or a simplify-reflect step fires. The default is
// a no-op, matching the rest of cladex's zero-value-ready types.
type Sink interface {
	ClauseSubsumed(subsumed, witness *clause.Clause, level Level)
}

type noopSink struct{}

func (noopSink) ClauseSubsumed(*clause.Clause, *clause.Clause, Level) {}

// NoopSink is the default Sink: it discards every call.
var NoopSink Sink = noopSink{}

func propagateSOS(witness, subsumed *clause.Clause) {
	if subsumed.SOS {
		witness.SOS = true
	}
}
