package glyphrun

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"
	"unicode/utf8"
)

func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	return buf
}

func encodeUTF32LE(s string) []byte {
	runes := []rune(s)
	buf := make([]byte, 4*len(runes))
	for i, r := range runes {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(r))
	}
	return buf
}

func TestDecodeToUTF8(t *testing.T) {
	const sample = "héllo 世界 \U0001F600"

	tests := []struct {
		name string
		enc  Encoding
		data []byte
	}{
		{"utf8", EncodingUTF8, []byte(sample)},
		{"utf16", EncodingUTF16, encodeUTF16LE(sample)},
		{"utf32", EncodingUTF32, encodeUTF32LE(sample)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeToUTF8(tt.enc, tt.data)
			if string(got) != sample {
				t.Errorf("decoded %q, want %q", got, sample)
			}
			wantCount := utf8.RuneCountInString(sample)
			if got := utf8.RuneCount(got); got != wantCount {
				t.Errorf("code point count = %d, want %d", got, wantCount)
			}
		})
	}

	t.Run("invalid utf8 rejected", func(t *testing.T) {
		if got := decodeToUTF8(EncodingUTF8, []byte{0xff, 0xfe, 0xfd}); got != nil {
			t.Errorf("decodeToUTF8 = %q, want nil", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		for _, enc := range []Encoding{EncodingUTF8, EncodingUTF16, EncodingUTF32} {
			if got := decodeToUTF8(enc, nil); len(got) != 0 {
				t.Errorf("%v: decoded %q from empty input", enc, got)
			}
		}
	})
}

func TestRunBuilder_TextToGlyphs_Encodings(t *testing.T) {
	tf := newAlignmentTypeface()
	b := NewRunBuilder(NewStrikeCache())

	for _, enc := range []struct {
		name string
		enc  Encoding
		data []byte
	}{
		{"utf8", EncodingUTF8, []byte("abc")},
		{"utf16", EncodingUTF16, encodeUTF16LE("abc")},
		{"utf32", EncodingUTF32, encodeUTF32LE("abc")},
	} {
		t.Run(enc.name, func(t *testing.T) {
			paint := Paint{Typeface: tf, Size: 12, Encoding: enc.enc}
			glyphs := b.textToGlyphs(paint, enc.data)
			want := []GlyphID{1, 2, 3}
			if len(glyphs) != len(want) {
				t.Fatalf("got %d glyphs, want %d", len(glyphs), len(want))
			}
			for i := range want {
				if glyphs[i] != want[i] {
					t.Errorf("glyphs[%d] = %d, want %d", i, glyphs[i], want[i])
				}
			}
		})
	}

	t.Run("unmapped runes become the undefined glyph", func(t *testing.T) {
		paint := Paint{Typeface: tf, Size: 12}
		glyphs := b.textToGlyphs(paint, []byte("axb"))
		if len(glyphs) != 3 {
			t.Fatalf("got %d glyphs, want 3", len(glyphs))
		}
		if glyphs[1] != 0 {
			t.Errorf("glyphs[1] = %d, want 0", glyphs[1])
		}
	})
}
