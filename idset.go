package glyphrun

// GlyphIDSet deduplicates glyph IDs without ever clearing its backing
// table. Reading the set is proportional to the number of input IDs, not
// the size of the universe. The implementation is based on the paper by
// Briggs and Torczon, "An Efficient Representation for Sparse Sets".
//
// The backing table maps each glyph ID to the unique index it was last
// assigned. Entries are not guaranteed meaningful: a stale entry either
// points past the current unique count or at a slot that now holds a
// different glyph, and the double check in Uniquify rejects both. This
// is what lets the table survive growth and reuse across unrelated runs
// and unrelated typefaces with no per-call clearing.
//
// A GlyphIDSet is owned by one RunBuilder and is not safe for
// concurrent use.
type GlyphIDSet struct {
	universeToUnique []uint16
}

// maxRetainedUniverse bounds the backing table's steady-state size. If a
// huge typeface grows the table past this, it is shrunk back after the
// call. It is unusual to see a typeface with more than 4096 glyphs.
const maxRetainedUniverse = 4096

// Uniquify deduplicates glyphs against a universe of universeSize glyph
// IDs. Glyph IDs at or beyond the universe fold to the undefined glyph 0.
//
// Unique glyphs are written to uniqueOut in first-occurrence order and
// the filled prefix is returned. For every input position i, denseOut[i]
// receives the index into the returned slice such that
// returned[denseOut[i]] == glyphs[i] (after folding). Both output slices
// must be at least len(glyphs) long.
//
// Uniquify is O(len(glyphs)) and allocates only when universeSize
// exceeds every universe seen before.
func (s *GlyphIDSet) Uniquify(universeSize int, glyphs []GlyphID, uniqueOut []GlyphID, denseOut []uint16) []GlyphID {
	if universeSize <= 0 {
		// No universe means no valid glyphs at all, not even the
		// undefined glyph.
		return uniqueOut[:0]
	}
	if universeSize > len(s.universeToUnique) {
		// Growth is the only O(universe) step. make zero-fills, but
		// correctness does not depend on it: the validity check below
		// rejects whatever the table holds.
		s.universeToUnique = make([]uint16, universeSize)
		Logger().Debug("glyphrun: glyph ID set grown", "universe", universeSize)
	}

	uniqueCount := 0
	for i, g := range glyphs {
		// If the glyph ID is not in range then it is the undefined glyph.
		if int(g) >= universeSize {
			g = undefGlyph
		}

		// Candidate index into the unique glyph vector. Valid only if it
		// is below the count assigned so far AND that slot holds this
		// glyph; everything else is stale and gets reassigned.
		uniqueIndex := s.universeToUnique[g]
		if int(uniqueIndex) >= uniqueCount || uniqueOut[uniqueIndex] != g {
			uniqueIndex = uint16(uniqueCount)
			uniqueOut[uniqueCount] = g
			s.universeToUnique[g] = uniqueIndex
			uniqueCount++
		}

		denseOut[i] = uniqueIndex
	}

	// Don't let the table drift endlessly upwards when fonts with huge
	// glyph counts pass through.
	if len(s.universeToUnique) > maxRetainedUniverse {
		s.universeToUnique = make([]uint16, maxRetainedUniverse)
		Logger().Debug("glyphrun: glyph ID set shrunk", "universe", maxRetainedUniverse)
	}

	return uniqueOut[:uniqueCount]
}
