package paint

import (
	"fmt"
	"math"

	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"
)

var (
	FONT_CACHE = map[float64]fnt.Face{}
)

// GetFont returns a label face at the given size, loading and caching a
// system font on first use. Panics when no usable font can be loaded.
func GetFont(size float64) fnt.Face {
	if face, exists := FONT_CACHE[size]; exists {
		return face
	}

	font := sysfont.NewFinder(nil).Match("normal")
	face, err := gg.LoadFontFace(font.Filename, size)
	if err != nil {
		panic(fmt.Sprint("Error loading font:", font))
	}

	FONT_CACHE[size] = face
	return face
}

// Measure returns the advance width of text in pixels.
func Measure(face fnt.Face, text string) float64 {
	return math.Ceil(float64(fnt.MeasureString(face, text)) / 64.0)
}

// Ascent returns the face's ascent in pixels.
func Ascent(face fnt.Face) float64 {
	return float64(face.Metrics().Ascent) / 64.0
}
