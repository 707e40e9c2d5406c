package glyphrun

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements TypefaceParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements TypefaceParser.Parse.
func (p *ximageParser) Parse(data []byte) (Typeface, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyphrun: failed to parse font: %w", err)
	}
	return &ximageTypeface{font: f}, nil
}

// ximageTypeface implements Typeface using sfnt.Font.
//
// sfnt.Font methods take an operation buffer; passing nil lets sfnt
// allocate internally, which keeps the typeface safe for concurrent use
// at the cost of an allocation per metric query. Advance queries sit
// behind the strike cache, so steady-state runs do not hit this path.
type ximageTypeface struct {
	font *sfnt.Font
}

// Name implements Typeface.Name.
func (t *ximageTypeface) Name() string {
	if name, err := t.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements Typeface.NumGlyphs.
func (t *ximageTypeface) NumGlyphs() int {
	return t.font.NumGlyphs()
}

// GlyphIndex implements Typeface.GlyphIndex.
func (t *ximageTypeface) GlyphIndex(r rune) GlyphID {
	idx, err := t.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements Typeface.GlyphAdvance.
// Horizontal metrics only; the Y component is always zero.
func (t *ximageTypeface) GlyphAdvance(g GlyphID, size float64) Point {
	advance, err := t.font.GlyphAdvance(nil, sfnt.GlyphIndex(g), fixed.Int26_6(size*64), font.HintingNone)
	if err != nil {
		return Point{}
	}
	return Point{X: fixedToFloat32(advance)}
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64.0
}
