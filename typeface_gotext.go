package glyphrun

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements TypefaceParser using go-text/typesetting.
// Select it with WithParser("gotext").
type gotextParser struct{}

// Parse implements TypefaceParser.Parse.
func (p *gotextParser) Parse(data []byte) (Typeface, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyphrun: failed to parse font: %w", err)
	}

	numGlyphs, err := readMaxpGlyphCount(data)
	if err != nil {
		return nil, err
	}

	return &gotextTypeface{
		face:      face,
		numGlyphs: numGlyphs,
		upem:      float32(face.Upem()),
	}, nil
}

// readMaxpGlyphCount reads numGlyphs from the raw maxp table.
// typesetting does not expose the glyph count directly, but its loader
// hands out raw tables; numGlyphs is the uint16 after the maxp version.
func readMaxpGlyphCount(data []byte) (int, error) {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("glyphrun: failed to load font tables: %w", err)
	}
	if len(loaders) == 0 {
		return 0, ErrMissingGlyphCount
	}

	table, err := loaders[0].RawTableTo(ot.MustNewTag("maxp"), nil)
	if err != nil || len(table) < 6 {
		return 0, ErrMissingGlyphCount
	}

	return int(binary.BigEndian.Uint16(table[4:6])), nil
}

// gotextTypeface implements Typeface using a typesetting font.Face.
//
// font.Face keeps internal glyph caches and is NOT safe for concurrent
// use. A RunBuilder is single-threaded and strike advance queries are
// serialized by the strike lock, so this is safe within one builder;
// do not share a gotextTypeface across builders running concurrently.
type gotextTypeface struct {
	face      *font.Face
	numGlyphs int
	upem      float32
}

// Name implements Typeface.Name.
func (t *gotextTypeface) Name() string {
	return t.face.Describe().Family
}

// NumGlyphs implements Typeface.NumGlyphs.
func (t *gotextTypeface) NumGlyphs() int {
	return t.numGlyphs
}

// GlyphIndex implements Typeface.GlyphIndex.
func (t *gotextTypeface) GlyphIndex(r rune) GlyphID {
	gid, ok := t.face.NominalGlyph(r)
	if !ok || gid > 0xFFFF {
		return 0
	}
	return GlyphID(gid)
}

// GlyphAdvance implements Typeface.GlyphAdvance.
// HorizontalAdvance reports font units; scale by size/upem.
func (t *gotextTypeface) GlyphAdvance(g GlyphID, size float64) Point {
	if t.upem == 0 {
		return Point{}
	}
	advance := t.face.HorizontalAdvance(font.GID(g))
	return Point{X: advance * float32(size) / t.upem}
}
