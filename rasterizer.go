package videotext

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/gogpu/videotext/geom"
	"github.com/gogpu/videotext/rich"
	"github.com/gogpu/videotext/text"
)

// Typesetter is the text-layout service the rasterizer consumes.
// layout.Typesetter is the default implementation.
type Typesetter interface {
	// SuggestSize returns the size needed by the part of tx that fits
	// constraint, and how many runes of tx that part holds.
	SuggestSize(tx rich.Text, constraint geom.Size) (geom.Size, int)

	// Draw draws tx laid out within frame into dst.
	Draw(dst draw.Image, tx rich.Text, frame geom.Rect)
}

// SurfaceAllocator allocates the offscreen w x h mask surface. The returned
// image must be fully transparent.
type SurfaceAllocator func(w, h int) (*image.Alpha, error)

// MaxSurfacePixels bounds the surfaces DefaultAllocator hands out.
const MaxSurfacePixels = 1 << 28

// DefaultAllocator allocates an *image.Alpha, refusing non-positive or
// oversized dimensions.
func DefaultAllocator(w, h int) (*image.Alpha, error) {
	if w <= 0 || h <= 0 || w > MaxSurfacePixels/h {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceTooLarge, w, h)
	}
	return image.NewAlpha(image.Rect(0, 0, w, h)), nil
}

// Place returns where text of the given size sits in box: anchored left
// for left and natural alignment, anchored right for right alignment and
// centered otherwise; always centered vertically.
func Place(size, box geom.Size, align text.Alignment) geom.Rect {
	var x float64
	switch align {
	case text.AlignNatural, text.AlignLeft:
		x = 0
	case text.AlignRight:
		x = box.W - size.W
	default:
		x = (box.W - size.W) / 2
	}
	return geom.Rect{X: x, Y: (box.H - size.H) / 2, W: size.W, H: size.H}
}

// Rasterizer draws resolved text into fresh masks.
type Rasterizer struct {
	typesetter Typesetter
	alloc      SurfaceAllocator
}

// NewRasterizer creates a Rasterizer. A nil allocator selects
// DefaultAllocator.
func NewRasterizer(ts Typesetter, alloc SurfaceAllocator) *Rasterizer {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	return &Rasterizer{typesetter: ts, alloc: alloc}
}

// Rasterize lays tx out in box (units) at scale and returns the mask,
// sized ceil(box*scale), and the placement in device pixels. It reports
// false, without error, for a degenerate box or empty text. Text that does
// not fit is drawn clipped and logged.
//
// Rasterize panics with *AllocationError when the surface cannot be
// allocated.
func (r *Rasterizer) Rasterize(tx rich.Text, box geom.Size, scale float64) (*Mask, geom.Rect, bool) {
	if box.Degenerate() || tx.IsEmpty() {
		return nil, geom.Rect{}, false
	}
	if scale <= 0 {
		scale = 1
	}

	px := box.Mul(scale)
	size, fitted := r.typesetter.SuggestSize(tx, px)
	if total := tx.Len(); fitted < total {
		Logger().Warn("videotext: text overflows bounds, drawing clipped",
			slog.Int("fitted", fitted),
			slog.Int("total", total),
			slog.Float64("width", box.W),
			slog.Float64("height", box.H))
	}

	style, _ := tx.FirstStyle()
	placement := Place(size, px, style.Align)

	w, h := px.Ceil()
	img, err := r.alloc(w, h)
	if err == nil && (img == nil || img.Rect.Dx() != w || img.Rect.Dy() != h) {
		err = fmt.Errorf("allocator returned %v", boundsOf(img))
	}
	if err != nil {
		panic(&AllocationError{Width: w, Height: h, Err: err})
	}

	r.typesetter.Draw(img, tx, placement)
	return newMask(img), placement, true
}

func boundsOf(img *image.Alpha) image.Rectangle {
	if img == nil {
		return image.Rectangle{}
	}
	return img.Rect
}
