package text

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
)

// LargeTitleSize is the point size of the default large-title style.
const LargeTitleSize = 34.0

// Font describes a font by source and point size. The zero Font means
// "not set" and is replaced by DefaultFont where a font is required.
type Font struct {
	Source *FontSource
	Size   float64
}

// IsZero reports whether the font is unset.
func (f Font) IsZero() bool {
	return f.Source == nil && f.Size == 0
}

// WithSize returns a copy of f with the given size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// Face instantiates the font at its size multiplied by scale.
func (f Font) Face(scale float64, opts ...FaceOption) (*Face, error) {
	src := f.Source
	if src == nil {
		src = DefaultSource()
	}
	return src.Face(f.Size*scale, opts...)
}

var defaultSource = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(gobold.TTF, WithName("Go Bold"))
	if err != nil {
		panic("text: bundled Go Bold font failed to parse: " + err.Error())
	}
	return s
})

// DefaultSource returns the bundled Go Bold font source.
func DefaultSource() *FontSource {
	return defaultSource()
}

// DefaultFont returns the platform large-title style: Go Bold at
// LargeTitleSize points.
func DefaultFont() Font {
	return Font{Source: DefaultSource(), Size: LargeTitleSize}
}
