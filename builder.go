package glyphrun

import (
	"encoding/binary"
	"unicode/utf8"
)

// RunBuilder converts encoded text and positioning information into a
// Run. It owns every buffer the Run views: scratch storage grows to the
// largest run ever prepared and is reused, and the Run itself is a
// single slot reconstructed in place on each successful call, so
// steady-state preparation performs no allocation.
//
// RunBuilder is NOT safe for concurrent use.
// Each goroutine should have its own builder.
type RunBuilder struct {
	strikes *StrikeCache
	idSet   GlyphIDSet

	// Per-glyph scratch, sized to the high-water run size.
	maxRunSize    int
	denseIndices  []uint16
	positions     []Point
	uniqueGlyphs  []GlyphID
	flatPositions []float32
	glyphBytes    []byte

	// Transient buffers: glyph IDs during text decoding, advances
	// during the position walk.
	scratchGlyphs   []GlyphID
	scratchAdvances []Point

	// The single reusable Run slot. run points at runSlot after a
	// successful prepare and is nil while the slot is torn down.
	runSlot Run
	run     *Run
}

// NewRunBuilder creates a builder that uses the given strike cache for
// advance lookups. If strikes is nil, the global strike cache is used.
func NewRunBuilder(strikes *StrikeCache) *RunBuilder {
	if strikes == nil {
		strikes = GetGlobalStrikeCache()
	}
	return &RunBuilder{strikes: strikes}
}

// PrepareDrawText prepares a run for text starting at origin. Positions
// are computed by walking glyph advances left to right; center and right
// alignment then shift the whole run. The resulting run carries the
// dense-index/unique-glyph pair.
//
// If the text resolves to no glyphs the call is a no-op and any
// previously prepared run is left in place.
func (b *RunBuilder) PrepareDrawText(paint Paint, text []byte, origin Point) {
	glyphs := b.textToGlyphs(paint, text)
	if len(glyphs) == 0 {
		return
	}
	b.initialize(len(glyphs))
	b.drawText(paint, glyphs, origin, nil, nil)
}

// PrepareDrawPosTextH prepares a run with caller-supplied horizontal
// positions: glyph i is placed at (xpos[i], constY). xpos must hold one
// x-coordinate per resolved glyph. No alignment is applied and the run
// carries no dense-index/unique-glyph data.
func (b *RunBuilder) PrepareDrawPosTextH(paint Paint, text []byte, xpos []float32, constY float32) {
	glyphs := b.textToGlyphs(paint, text)
	if len(glyphs) == 0 {
		return
	}
	b.initialize(len(glyphs))
	b.drawPosTextH(paint, glyphs, xpos, constY, nil, nil)
}

// PrepareDrawPosText prepares a run with fully caller-supplied
// positions, one point per resolved glyph. No alignment is applied and
// the run carries no dense-index/unique-glyph data.
func (b *RunBuilder) PrepareDrawPosText(paint Paint, text []byte, pos []Point) {
	glyphs := b.textToGlyphs(paint, text)
	if len(glyphs) == 0 {
		return
	}
	b.initialize(len(glyphs))
	b.drawPosText(paint, glyphs, pos, nil, nil)
}

// UseRun returns a borrowed handle to the most recently prepared run, or
// nil if no run is currently built. The handle and everything it views
// are invalidated by the builder's next successful preparation call.
func (b *RunBuilder) UseRun() *Run {
	return b.run
}

// initialize sizes the per-glyph scratch buffers for a run of
// totalRunSize glyphs and tears down the previous run slot. Buffers only
// grow; a smaller run reuses the high-water storage.
func (b *RunBuilder) initialize(totalRunSize int) {
	if totalRunSize > b.maxRunSize {
		b.maxRunSize = totalRunSize
		b.denseIndices = make([]uint16, totalRunSize)
		b.positions = make([]Point, totalRunSize)
		b.uniqueGlyphs = make([]GlyphID, totalRunSize)
		b.flatPositions = make([]float32, 2*totalRunSize)
		b.glyphBytes = make([]byte, 2*totalRunSize)
		Logger().Debug("glyphrun: scratch grown", "runSize", totalRunSize)
	}

	// Be sure to tear down the last run before we reuse its slot.
	b.run = nil
}

// textToGlyphs resolves the text buffer to glyph IDs per the paint's
// encoding. For EncodingGlyphID the buffer is reinterpreted directly as
// little-endian uint16 glyph IDs; otherwise the text is decoded and each
// code point mapped through the paint's typeface. The returned slice
// borrows the builder's transient buffer and is valid until the next
// resolution call.
func (b *RunBuilder) textToGlyphs(paint Paint, text []byte) []GlyphID {
	if paint.Encoding == EncodingGlyphID {
		n := len(text) / 2
		b.scratchGlyphs = growGlyphs(b.scratchGlyphs, n)
		for i := 0; i < n; i++ {
			b.scratchGlyphs[i] = GlyphID(binary.LittleEndian.Uint16(text[2*i:]))
		}
		return b.scratchGlyphs[:n]
	}

	decoded := decodeToUTF8(paint.Encoding, text)
	n := utf8.RuneCount(decoded)
	if n <= 0 {
		return nil
	}

	typeface := paint.typefaceOrDefault()
	b.scratchGlyphs = growGlyphs(b.scratchGlyphs, n)
	for i, off := 0, 0; off < len(decoded); i++ {
		r, size := utf8.DecodeRune(decoded[off:])
		b.scratchGlyphs[i] = typeface.GlyphIndex(r)
		off += size
	}
	return b.scratchGlyphs[:n]
}

// addDenseAndUnique deduplicates glyphs into the builder's unique-glyph
// and dense-index buffers, using the typeface's glyph count as the
// universe. An empty result means uniqueness is unavailable (empty input
// or a font reporting zero glyphs), not that the run is empty; callers
// must skip advance lookups in that case.
func (b *RunBuilder) addDenseAndUnique(paint Paint, glyphs []GlyphID) []GlyphID {
	if len(glyphs) == 0 {
		return nil
	}

	// There better be glyphs in the font if we want to uniquify.
	universe := paint.typefaceOrDefault().NumGlyphs()
	if universe <= 0 {
		return nil
	}

	unique := b.idSet.Uniquify(universe, glyphs, b.uniqueGlyphs, b.denseIndices)

	if debugChecks {
		for i, g := range glyphs {
			if int(g) >= universe {
				g = undefGlyph
			}
			if unique[b.denseIndices[i]] != g {
				panic("glyphrun: dense index round trip failed")
			}
		}
	}

	return unique
}

// makeRun reconstructs the run slot from the resolved glyphs and final
// positions. The stored paint is normalized: positions are absolute now,
// so its encoding becomes EncodingGlyphID and its alignment AlignLeft.
// Empty runs are ignored and leave the slot torn down.
func (b *RunBuilder) makeRun(paint Paint, glyphs []GlyphID, positions []Point,
	denseIndices []uint16, uniqueGlyphs []GlyphID, text []byte, clusters []uint32) {
	if len(glyphs) == 0 {
		return
	}

	runPaint := paint
	runPaint.Encoding = EncodingGlyphID
	runPaint.Align = AlignLeft

	flat := b.flatPositions[:2*len(glyphs)]
	for i, p := range positions {
		flat[2*i] = p.X
		flat[2*i+1] = p.Y
	}

	raw := b.glyphBytes[:2*len(glyphs)]
	for i, g := range glyphs {
		binary.LittleEndian.PutUint16(raw[2*i:], uint16(g))
	}

	b.runSlot = Run{
		paint:         runPaint,
		glyphs:        glyphs,
		positions:     positions,
		uniqueGlyphs:  uniqueGlyphs,
		denseIndices:  denseIndices,
		flatPositions: flat,
		glyphBytes:    raw,
		text:          text,
		clusters:      clusters,
	}
	b.run = &b.runSlot
}

// drawText computes advance-walked positions for glyphs starting at
// origin and builds the run. If the unique set is unavailable (zero
// glyph font), no run is produced.
func (b *RunBuilder) drawText(paint Paint, glyphs []GlyphID, origin Point,
	text []byte, clusters []uint32) {
	runSize := len(glyphs)

	unique := b.addDenseAndUnique(paint, glyphs)
	if len(unique) == 0 {
		return
	}

	if cap(b.scratchAdvances) < len(unique) {
		b.scratchAdvances = make([]Point, len(unique))
	}
	advances := b.scratchAdvances[:len(unique)]

	// Hold the strike only for the advance query; the position walk
	// below must not serialize unrelated strike users.
	handle := b.strikes.FindOrCreateExclusive(paint)
	handle.GetAdvances(unique, advances)
	handle.Release()

	endOfLastGlyph := origin
	for i := 0; i < runSize; i++ {
		b.positions[i] = endOfLastGlyph
		endOfLastGlyph = endOfLastGlyph.Add(advances[b.denseIndices[i]])
	}

	if paint.Align != AlignLeft {
		length := endOfLastGlyph.Sub(origin)
		if paint.Align == AlignCenter {
			length.X *= 0.5
			length.Y *= 0.5
		}
		for i := 0; i < runSize; i++ {
			b.positions[i] = b.positions[i].Sub(length)
		}
	}

	b.makeRun(paint, glyphs, b.positions[:runSize],
		b.denseIndices[:runSize], unique, text, clusters)
}

// drawPosTextH builds the run from per-glyph x-coordinates and a shared
// baseline y.
func (b *RunBuilder) drawPosTextH(paint Paint, glyphs []GlyphID,
	xpos []float32, constY float32, text []byte, clusters []uint32) {
	runSize := len(glyphs)

	// The dense indices are not used by the rest of the stack yet.
	if debugChecks {
		b.addDenseAndUnique(paint, glyphs)
	}

	for i := 0; i < runSize; i++ {
		b.positions[i] = Point{X: xpos[i], Y: constY}
	}

	b.makeRun(paint, glyphs, b.positions[:runSize], nil, nil, text, clusters)
}

// drawPosText builds the run from fully caller-supplied positions. The
// points are copied into builder storage so the run does not alias the
// caller's slice.
func (b *RunBuilder) drawPosText(paint Paint, glyphs []GlyphID,
	pos []Point, text []byte, clusters []uint32) {
	runSize := len(glyphs)

	// The dense indices are not used by the rest of the stack yet.
	if debugChecks {
		b.addDenseAndUnique(paint, glyphs)
	}

	copy(b.positions[:runSize], pos)

	b.makeRun(paint, glyphs, b.positions[:runSize], nil, nil, text, clusters)
}

// growGlyphs returns a glyph slice with capacity for at least n entries,
// reusing buf when it is already large enough.
func growGlyphs(buf []GlyphID, n int) []GlyphID {
	if cap(buf) < n {
		return make([]GlyphID, n)
	}
	return buf[:n]
}
