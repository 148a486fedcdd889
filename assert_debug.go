//go:build emstdebug

package emst

import "fmt"

// debugAssertions is true under -tags emstdebug: assertf panics instead of
// returning an error, since spec §7 treats these as fatal, unrecoverable
// invariant violations rather than something a caller can retry.
const debugAssertions = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("emst: assertion failed: "+format, args...))
	}
}
