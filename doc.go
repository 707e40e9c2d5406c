// Package glyphrun prepares shaped text for rendering.
//
// Given a [Paint], an encoded text buffer (or raw glyph identifiers) and
// positioning information, a [RunBuilder] resolves glyph IDs through the
// paint's typeface, deduplicates them, computes or validates per-glyph
// positions (including text alignment), and packages the result into a
// [Run] handed to a rasterizer.
//
// # Buffer discipline
//
// The package is built for a hot per-frame text path: a RunBuilder owns
// growable scratch buffers sized to the largest run it has ever seen and
// reconstructs a single Run slot in place on every call, so repeated
// preparation of similarly sized runs performs no allocation. Glyph
// deduplication uses [GlyphIDSet], a sparse set whose backing table is
// never cleared between calls.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphrun"
//
//	tf, _ := glyphrun.ParseTypeface(fontData)
//	paint := glyphrun.Paint{Typeface: tf, Size: 16}
//
//	b := glyphrun.NewRunBuilder(nil)
//	b.PrepareDrawText(paint, []byte("hello"), glyphrun.Point{X: 10, Y: 40})
//	if run := b.UseRun(); run != nil {
//		run.ShuntToDrawTarget(target)
//	}
//
// # Lifetime
//
// A Run borrows all of its array data from the builder; it is valid only
// until the builder's next successful preparation call. A RunBuilder is
// not safe for concurrent use; create one builder per goroutine.
package glyphrun
