//go:build glyphrundebug

package glyphrun

// debugChecks enables internal invariant validation. The positioned
// preparation paths additionally run deduplication (discarding the
// result) so the dense-index round trip is exercised on every call.
const debugChecks = true
