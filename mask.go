package videotext

import (
	"bytes"
	"image"
	"image/color"
)

// MaskColor is the fill used for glyphs in a mask.
var MaskColor color.Color = color.Alpha{A: 0xff}

// Mask is a rasterized alpha mask. Values range from 0 (transparent, video
// hidden) to 255 (opaque, video visible).
//
// Mask is immutable: the pipeline replaces it wholesale on every run.
type Mask struct {
	img *image.Alpha
}

func newMask(img *image.Alpha) *Mask {
	return &Mask{img: img}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.img.Rect.Dx() }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.img.Rect.Dy() }

// ColorModel implements image.Image.
func (m *Mask) ColorModel() color.Model { return color.AlphaModel }

// Bounds implements image.Image.
func (m *Mask) Bounds() image.Rectangle { return m.img.Rect }

// At implements image.Image.
func (m *Mask) At(x, y int) color.Color { return m.img.AlphaAt(x, y) }

// AlphaAt returns the mask value at (x, y), or 0 outside the mask.
func (m *Mask) AlphaAt(x, y int) uint8 { return m.img.AlphaAt(x, y).A }

// Pix returns a copy of the mask values, row-major.
func (m *Mask) Pix() []uint8 {
	out := make([]uint8, m.Width()*m.Height())
	w := m.Width()
	for y := 0; y < m.Height(); y++ {
		row := m.img.Pix[y*m.img.Stride : y*m.img.Stride+w]
		copy(out[y*w:], row)
	}
	return out
}

// Equal reports whether both masks have identical bounds and values.
func (m *Mask) Equal(o *Mask) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || m.img.Rect != o.img.Rect {
		return false
	}
	return bytes.Equal(m.Pix(), o.Pix())
}

// Coverage returns the bounding box of the non-transparent pixels.
func (m *Mask) Coverage() image.Rectangle {
	var r image.Rectangle
	b := m.img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.img.AlphaAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}
