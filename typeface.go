package glyphrun

// Typeface resolves characters to glyphs and provides the per-glyph
// metrics run preparation needs. This abstraction allows swapping the
// font parsing library (e.g., golang.org/x/image/font/sfnt vs
// go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/sfnt.
type Typeface interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// NumGlyphs returns the number of glyphs in the font. It is the
	// exclusive upper bound on valid glyph IDs; a font may report zero,
	// in which case glyph deduplication is unavailable.
	NumGlyphs() int

	// GlyphIndex returns the glyph ID for a rune.
	// Returns 0 (the undefined glyph) if the rune has no glyph.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance of a glyph at the given size
	// (in pixels). The advance is the displacement the glyph
	// contributes to the cursor position of the next glyph.
	GlyphAdvance(g GlyphID, size float64) Point
}

// TypefaceParser is an interface for font parsing backends.
type TypefaceParser interface {
	// Parse parses font data (TTF or OTF) and returns a Typeface.
	Parse(data []byte) (Typeface, error)
}

// parserRegistry holds registered typeface parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]TypefaceParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterTypefaceParser registers a custom font parsing backend.
func RegisterTypefaceParser(name string, parser TypefaceParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) TypefaceParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}

// parseConfig holds configuration applied by ParseOptions.
type parseConfig struct {
	parserName string
}

// ParseOption configures ParseTypeface.
type ParseOption func(*parseConfig)

// WithParser selects the parsing backend by registry name.
// Unknown names fall back to the default backend.
func WithParser(name string) ParseOption {
	return func(c *parseConfig) {
		c.parserName = name
	}
}

// ParseTypeface parses font data (TTF or OTF) into a Typeface.
// The data slice must not be mutated while the typeface is in use.
func ParseTypeface(data []byte, opts ...ParseOption) (Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := parseConfig{parserName: defaultParserName}
	for _, opt := range opts {
		opt(&config)
	}

	return getParser(config.parserName).Parse(data)
}
