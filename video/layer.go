package video

import (
	"errors"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/videotext/geom"
)

// ErrNoFrame is returned by Composite when the source has no frame yet.
var ErrNoFrame = errors.New("video: no frame available")

// Layer is a video presentation surface that accepts a mask.
type Layer interface {
	// SetFrame positions the video surface in view units.
	SetFrame(r geom.Rect)

	// SetMask binds an alpha mask; nil removes it and shows the video unmasked.
	SetMask(mask image.Image)

	// SetMaskFrame positions the mask in view units.
	SetMaskFrame(r geom.Rect)
}

// FrameSource hands out the frame currently due for display.
type FrameSource interface {
	// Frame returns the current frame, or nil before the first frame.
	Frame() image.Image
}

// CompositorOption configures a Compositor.
type CompositorOption func(*Compositor)

// WithScale sets device pixels per view unit. Values <= 0 are ignored.
func WithScale(scale float64) CompositorOption {
	return func(c *Compositor) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithScaler sets the interpolator used to fit frames into the layer frame.
// The default is draw.BiLinear from golang.org/x/image/draw.
func WithScaler(s xdraw.Scaler) CompositorOption {
	return func(c *Compositor) {
		if s != nil {
			c.scaler = s
		}
	}
}

// Compositor is a software Layer. It is not safe for concurrent use.
type Compositor struct {
	source FrameSource
	scaler xdraw.Scaler
	scale  float64

	frame     geom.Rect
	mask      image.Image
	maskFrame geom.Rect

	scratch *image.RGBA
}

// NewCompositor creates a Compositor drawing frames from src.
func NewCompositor(src FrameSource, opts ...CompositorOption) *Compositor {
	c := &Compositor{
		source: src,
		scaler: xdraw.BiLinear,
		scale:  1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetFrame implements Layer.
func (c *Compositor) SetFrame(r geom.Rect) { c.frame = r }

// SetMask implements Layer.
func (c *Compositor) SetMask(mask image.Image) { c.mask = mask }

// SetMaskFrame implements Layer.
func (c *Compositor) SetMaskFrame(r geom.Rect) { c.maskFrame = r }

// Frame returns the current layer frame.
func (c *Compositor) Frame() geom.Rect { return c.frame }

// Mask returns the bound mask, or nil.
func (c *Compositor) Mask() image.Image { return c.mask }

// MaskFrame returns the current mask frame.
func (c *Compositor) MaskFrame() geom.Rect { return c.maskFrame }

// Composite draws the current video frame, scaled to the layer frame, over
// dst. With a mask bound, only pixels under the mask's opaque regions are
// touched. dst is in device pixels.
func (c *Compositor) Composite(dst draw.Image) error {
	src := c.source.Frame()
	if src == nil {
		return ErrNoFrame
	}

	dr := c.frame.Mul(c.scale).Image()
	if dr.Empty() {
		return nil
	}

	if c.scratch == nil || c.scratch.Bounds().Size() != dr.Size() {
		c.scratch = image.NewRGBA(image.Rectangle{Max: dr.Size()})
	}
	c.scaler.Scale(c.scratch, c.scratch.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if c.mask == nil {
		xdraw.Draw(dst, dr, c.scratch, image.Point{}, xdraw.Over)
		return nil
	}

	// The mask is rasterized at device resolution, so its pixel origin is
	// the scaled mask frame origin.
	mr := c.maskFrame.Mul(c.scale).Image()
	mp := c.mask.Bounds().Min.Add(dr.Min.Sub(mr.Min))
	xdraw.DrawMask(dst, dr, c.scratch, image.Point{}, c.mask, mp, xdraw.Over)
	return nil
}
