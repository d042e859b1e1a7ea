package render

import (
	_ "embed"
	"strings"
)

// fontFamily is DejaVu Sans Condensed. It covers Latin, Greek, Cyrillic,
// Hebrew and Arabic, so names and right-to-left reports keep their glyphs.
const fontFamily = "DejaVu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

// maxRune is the last code point the font's cmap can address. fpdf indexes
// glyph tables by code point and has no room past the basic plane.
const maxRune = 0xFFFF

// clean replaces characters the font cannot address with '?'.
func clean(text string) string {
	for _, r := range text {
		if r > maxRune {
			return strings.Map(func(r rune) rune {
				if r > maxRune {
					return '?'
				}
				return r
			}, text)
		}
	}
	return text
}
