package glyphrun

// Paint describes how text is interpreted and positioned when preparing a
// run. It is the subset of a full rendering paint that run preparation
// consumes; color, stroking and effects are rasterizer concerns.
//
// Paint is a value type. A RunBuilder copies the caller's paint into the
// Run it builds, so mutating the original after a prepare call does not
// affect the run.
type Paint struct {
	// Typeface resolves characters to glyphs and provides glyph metrics.
	// When nil, the package default typeface (Go Regular) is used.
	Typeface Typeface

	// Size is the font size in pixels (ppem).
	Size float64

	// Encoding declares how text buffers passed with this paint are
	// encoded. The zero value is EncodingUTF8.
	Encoding Encoding

	// Align specifies run alignment relative to the origin point.
	// Only the advance-walk preparation path applies alignment.
	Align Align

	// Hinting selects the hinting mode recorded in the strike key.
	Hinting Hinting
}

// typefaceOrDefault returns the paint's typeface, falling back to the
// package default when the paint specifies none.
func (p *Paint) typefaceOrDefault() Typeface {
	if p.Typeface != nil {
		return p.Typeface
	}
	return DefaultTypeface()
}
