package glyphrun

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index within a typeface.
// Glyph ID 0 is reserved for the undefined glyph.
type GlyphID uint16

// undefGlyph is the reserved "undefined glyph" identifier. Out-of-range
// glyph IDs fold to it before deduplication and positioning.
const undefGlyph GlyphID = 0

// Point is a 2D position or displacement in pixels.
type Point struct {
	X, Y float32
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Encoding specifies how a text buffer passed to a RunBuilder is encoded.
type Encoding int

const (
	// EncodingUTF8 is UTF-8 encoded text.
	EncodingUTF8 Encoding = iota
	// EncodingUTF16 is UTF-16 encoded text, little-endian, no BOM.
	EncodingUTF16
	// EncodingUTF32 is UTF-32 encoded text, little-endian, no BOM.
	EncodingUTF32
	// EncodingGlyphID is a sequence of raw little-endian uint16 glyph IDs.
	// No character decoding is performed.
	EncodingGlyphID
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF32:
		return "UTF-32"
	case EncodingGlyphID:
		return "GlyphID"
	default:
		return unknownStr
	}
}

// Align specifies how a run is aligned relative to its origin point.
type Align int

const (
	// AlignLeft places the origin at the start of the run.
	AlignLeft Align = iota
	// AlignCenter centers the run on the origin.
	AlignCenter
	// AlignRight places the origin at the end of the run.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Hinting specifies font hinting mode. It participates in strike identity
// but does not affect advance computation in this package.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}
