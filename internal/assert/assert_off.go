//go:build !clauseboundscheck

package assert

// That is a no-op unless built with the clauseboundscheck tag; see
// assert.go.
func That(ok bool, msg string) {}
