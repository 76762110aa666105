//go:build !debug

// Package debug provides assertions that compile to no-ops unless the debug
// build tag is set. Register level mistakes fail silently on hardware, the
// checked build is what catches them.
package debug

// Enabled gates assertions that need more than a single expression, e.g.
// anything that allocates or could itself panic. Wrap those in
// `if debug.Enabled {...}` so release builds drop them entirely.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
