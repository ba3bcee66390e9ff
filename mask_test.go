package videotext

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func alphaWith(w, h int, set ...image.Point) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for _, p := range set {
		img.SetAlpha(p.X, p.Y, color.Alpha{A: 0xff})
	}
	return img
}

func TestMaskAccessors(t *testing.T) {
	m := newMask(alphaWith(4, 3, image.Pt(1, 2)))

	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, image.Rect(0, 0, 4, 3), m.Bounds())
	assert.Equal(t, color.AlphaModel, m.ColorModel())
	assert.Equal(t, uint8(0xff), m.AlphaAt(1, 2))
	assert.Equal(t, color.Alpha{A: 0xff}, m.At(1, 2))
	assert.Zero(t, m.AlphaAt(0, 0))
	assert.Zero(t, m.AlphaAt(-1, 0), "outside bounds is transparent")
}

func TestMaskPixIsACopy(t *testing.T) {
	m := newMask(alphaWith(2, 2, image.Pt(0, 0)))
	pix := m.Pix()
	assert.Equal(t, []uint8{0xff, 0, 0, 0}, pix)
	pix[0] = 0
	assert.Equal(t, uint8(0xff), m.AlphaAt(0, 0))
}

func TestMaskEqual(t *testing.T) {
	a := newMask(alphaWith(3, 3, image.Pt(1, 1)))
	b := newMask(alphaWith(3, 3, image.Pt(1, 1)))
	c := newMask(alphaWith(3, 3, image.Pt(2, 1)))
	d := newMask(alphaWith(3, 4, image.Pt(1, 1)))

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))

	var none *Mask
	assert.True(t, none.Equal(nil))
}

func TestMaskCoverage(t *testing.T) {
	m := newMask(alphaWith(10, 10, image.Pt(2, 3), image.Pt(5, 7)))
	assert.Equal(t, image.Rect(2, 3, 6, 8), m.Coverage())
	assert.True(t, newMask(alphaWith(4, 4)).Coverage().Empty())
}
