package glyphrun

import "errors"

// Sentinel errors for typeface parsing.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyphrun: empty font data")

	// ErrMissingGlyphCount is returned when a font carries no usable
	// glyph count (a missing or truncated maxp table).
	ErrMissingGlyphCount = errors.New("glyphrun: font has no glyph count")
)
