package canvas

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measure returns the width and height of text drawn at the given font size.
type Measure func(text string, size int) (w, h float64)

// FaceMeasure measures text with a font.Face, scaling its metrics from the
// face's native line height to the requested size. Height is the ascent,
// which matches how labels are drawn on their baseline.
func FaceMeasure(face font.Face) Measure {
	return func(text string, size int) (float64, float64) {
		m := face.Metrics()
		native := fixedToFloat(m.Height)
		if native <= 0 {
			return 0, 0
		}
		scale := float64(size) / native
		w := fixedToFloat(font.MeasureString(face, text)) * scale
		h := fixedToFloat(m.Ascent) * scale
		if text == "" {
			h = 0
		}
		return w, h
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
