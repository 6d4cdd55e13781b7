package cladex

import (
	"go.uber.org/zap"

	"github.com/eprover-go/cladex/clause"
)

// ZapSink adapts Sink to go.uber.org/zap, in the idiom of a small
// wrapper type around a *zap.Logger that emits structured fields
// rather than formatted strings (the same shape as the teacher pack's
// LSP log adapter).
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink builds a ZapSink that logs proof-recording events at
// Debug level through log.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// ClauseSubsumed logs the subsumption hit as a structured debug event.
func (z *ZapSink) ClauseSubsumed(subsumed, witness *clause.Clause, level Level) {
	z.log.Debug("clause subsumed",
		zap.Uint64("subsumed_id", uint64(subsumed.ClauseID)),
		zap.Uint64("witness_id", uint64(witness.ClauseID)),
		zap.Int("level", int(level)),
	)
}
