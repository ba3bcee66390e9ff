package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource instantiated at a specific pixel size.
//
// Face wraps an x/image font.Face, which keeps glyph caches and is not safe
// for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
	face   font.Face
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		LineGap:   fixedToFloat(m.Height) - fixedToFloat(m.Ascent) - fixedToFloat(m.Descent),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the advance width of s in pixels, kerning included.
func (f *Face) Advance(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// XFace returns the underlying x/image face, used for glyph drawing.
func (f *Face) XFace() font.Face { return f.face }

// Close releases the glyph caches held by the face.
func (f *Face) Close() error {
	return f.face.Close()
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
