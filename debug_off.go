//go:build !glyphrundebug

package glyphrun

// debugChecks is enabled by the glyphrundebug build tag.
const debugChecks = false
