package glyphrun

// Run is a finalized glyph run: a paint, glyph IDs, one position per
// glyph, and optional deduplication and source-text metadata, ready for
// handoff to a rasterizer.
//
// A Run borrows all of its array data from the RunBuilder that built it
// and is valid only until that builder's next successful preparation
// call. It never owns the memory it views. Once built it is read-only.
type Run struct {
	paint Paint

	glyphs    []GlyphID
	positions []Point

	// uniqueGlyphs lists each distinct glyph once, in first-occurrence
	// order. denseIndices maps every input position into uniqueGlyphs;
	// it is empty on the positioned preparation paths.
	uniqueGlyphs []GlyphID
	denseIndices []uint16

	// flatPositions and glyphBytes are the export encodings of
	// positions and glyphs, shared with the builder's scratch storage.
	flatPositions []float32
	glyphBytes    []byte

	text     []byte
	clusters []uint32
}

// Len returns the number of glyphs in the run.
func (r *Run) Len() int { return len(r.glyphs) }

// Paint returns the run's paint. The paint was copied when the run was
// built; its encoding is normalized to EncodingGlyphID and its alignment
// to AlignLeft, since positions are final.
func (r *Run) Paint() Paint { return r.paint }

// GlyphIDs returns the run's glyph IDs, one per glyph, duplicates
// included.
func (r *Run) GlyphIDs() []GlyphID { return r.glyphs }

// Positions returns one absolute position per glyph, indexed like
// GlyphIDs.
func (r *Run) Positions() []Point { return r.positions }

// UniqueGlyphIDs returns the distinct glyph IDs in first-occurrence
// order. Empty on the positioned preparation paths.
func (r *Run) UniqueGlyphIDs() []GlyphID { return r.uniqueGlyphs }

// DenseIndices returns, for each glyph position, the index of that glyph
// in UniqueGlyphIDs. Empty whenever UniqueGlyphIDs is empty.
func (r *Run) DenseIndices() []uint16 { return r.denseIndices }

// Text returns the source text bytes correlated with this run, if any.
func (r *Run) Text() []byte { return r.text }

// Clusters returns the cluster mapping correlated with this run, if any.
func (r *Run) Clusters() []uint32 { return r.clusters }

// ShuntToDrawTarget hands the run to a draw target. Positions are
// already absolute, so the origin passed through is (0,0) and the
// position buffer uses two scalars per glyph.
func (r *Run) ShuntToDrawTarget(target DrawTarget) {
	if target == nil || len(r.glyphs) == 0 {
		return
	}
	target.DrawGlyphs(r.glyphs, r.flatPositions, 2, Point{}, r.paint)
}

// ShuntToCallback hands the run's raw data to cb with no
// interpretation: the glyph count, the little-endian glyph-ID bytes,
// and the flat position buffer.
func (r *Run) ShuntToCallback(cb ShuntCallback) {
	if cb == nil {
		return
	}
	cb(len(r.glyphs), r.glyphBytes, r.flatPositions)
}
