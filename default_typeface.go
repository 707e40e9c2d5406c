package glyphrun

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultTypefaceOnce sync.Once
	defaultTypeface     Typeface
)

// DefaultTypeface returns the package default typeface (Go Regular),
// used whenever a Paint specifies no typeface. The font is parsed
// lazily on first use and shared afterwards.
func DefaultTypeface() Typeface {
	defaultTypefaceOnce.Do(func() {
		tf, err := ParseTypeface(goregular.TTF)
		if err != nil {
			// goregular ships with the module; a parse failure here is
			// a build problem, not a runtime condition.
			panic("glyphrun: failed to parse default typeface: " + err.Error())
		}
		defaultTypeface = tf
	})
	return defaultTypeface
}
