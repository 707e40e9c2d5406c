// Command glyphrundump prepares a glyph run for a piece of text and
// dumps the resolved glyphs, positions and deduplication tables.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/glyphrun"
)

func main() {
	var (
		fontPath string
		text     string
		size     float64
		align    string
		parser   string
		verbose  bool
	)

	pflag.StringVarP(&fontPath, "font", "f", "", "Path to a TTF/OTF font file (default: Go Regular)")
	pflag.StringVarP(&text, "text", "t", "Hello, glyphs!", "Text to prepare")
	pflag.Float64VarP(&size, "size", "s", 16, "Font size in pixels")
	pflag.StringVarP(&align, "align", "a", "left", "Alignment: left, center or right")
	pflag.StringVarP(&parser, "parser", "p", "ximage", "Font parsing backend: ximage or gotext")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pflag.Parse()

	if verbose {
		glyphrun.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	paint := glyphrun.Paint{Size: size, Align: parseAlign(align)}

	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		tf, err := glyphrun.ParseTypeface(data, glyphrun.WithParser(parser))
		if err != nil {
			log.Fatalf("Failed to parse font: %v", err)
		}
		paint.Typeface = tf
	}

	builder := glyphrun.NewRunBuilder(nil)
	builder.PrepareDrawText(paint, []byte(text), glyphrun.Point{})

	run := builder.UseRun()
	if run == nil {
		log.Fatal("No run produced (empty text or unusable font)")
	}

	tf := paint.Typeface
	if tf == nil {
		tf = glyphrun.DefaultTypeface()
	}
	fmt.Printf("typeface: %s (%d glyphs)\n", tf.Name(), tf.NumGlyphs())
	fmt.Printf("run: %d glyphs, %d unique\n\n", run.Len(), len(run.UniqueGlyphIDs()))

	glyphs := run.GlyphIDs()
	positions := run.Positions()
	dense := run.DenseIndices()
	for i := range glyphs {
		fmt.Printf("  %3d  glyph %5d  dense %3d  at (%8.2f, %8.2f)\n",
			i, glyphs[i], dense[i], positions[i].X, positions[i].Y)
	}

	fmt.Printf("\nunique: %v\n", run.UniqueGlyphIDs())

	hits, misses, strikes := glyphrun.GetGlobalStrikeCache().Stats()
	fmt.Printf("strike cache: %d hits, %d misses, %d strikes\n", hits, misses, strikes)
}

func parseAlign(s string) glyphrun.Align {
	switch s {
	case "center":
		return glyphrun.AlignCenter
	case "right":
		return glyphrun.AlignRight
	default:
		return glyphrun.AlignLeft
	}
}
