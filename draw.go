package glyphrun

// DrawTarget receives finished runs for rasterization. Implementations
// live outside this package (a software rasterizer, a GPU batcher, a
// recording canvas).
type DrawTarget interface {
	// DrawGlyphs draws positioned glyphs. positions holds
	// scalarsPerPos scalars per glyph (currently always 2: x then y),
	// already translated to absolute coordinates; origin is the
	// residual offset to apply, (0,0) for runs prepared by this
	// package. The slices are borrowed and must not be retained.
	DrawGlyphs(glyphs []GlyphID, positions []float32, scalarsPerPos int, origin Point, paint Paint)
}

// ShuntCallback receives a run's raw data: the glyph count, the glyph
// IDs as little-endian uint16 bytes, and the flat x,y position buffer.
// The slices are borrowed and must not be retained.
type ShuntCallback func(glyphCount int, glyphBytes []byte, positions []float32)
