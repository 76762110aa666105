//go:build debug

package debug

// Enabled gates assertions that need more than a single expression, e.g.
// anything that allocates or could itself panic. Wrap those in
// `if debug.Enabled {...}` so release builds drop them entirely.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}
