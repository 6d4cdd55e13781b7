//go:build clauseboundscheck

// Package assert implements cladex's invariant checks. The core never
// originates errors (clause indexing and subsumption have no failure
// mode a caller should recover from — a violated invariant is a bug in
// the host, not bad input); checks panic the way bart's own node-type
// and depth guards do (panic("logic error: ...") at the point of the
// violation), gated behind the clauseboundscheck build tag so the
// checks cost nothing in a release build.
package assert

// That panics with msg if ok is false.
func That(ok bool, msg string) {
	if !ok {
		panic("logic error: " + msg)
	}
}
