//go:build !emstdebug

package emst

// debugAssertions is false in default builds: assertf is a no-op, so hot
// inner-loop kernels (traversal, label reduction) pay nothing for the
// invariant checks spec §7 calls "algorithmic invariant violations".
// Build with -tags emstdebug to enable them.
const debugAssertions = false

func assertf(cond bool, format string, args ...any) {}
