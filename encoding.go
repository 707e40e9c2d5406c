package glyphrun

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// decodeToUTF8 returns a UTF-8 view of data for the given character
// encoding, or nil if the buffer is not valid for that encoding.
// EncodingGlyphID buffers carry no characters and are never passed here.
//
// UTF-8 input is returned as-is after validation. UTF-16/32 input is
// transcoded through x/text decoders, which replace malformed sequences
// with U+FFFD; the transcode allocates, but this is the cold text-decode
// path, not the per-frame glyph-ID path.
func decodeToUTF8(enc Encoding, data []byte) []byte {
	switch enc {
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return nil
		}
		return data
	case EncodingUTF16:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return nil
		}
		return out
	case EncodingUTF32:
		dec := utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return nil
		}
		return out
	default:
		return nil
	}
}
