package videotext

import (
	"github.com/gogpu/videotext/geom"
	"github.com/gogpu/videotext/video"
)

// Applicator binds masks to a video layer and keeps the layer and mask
// frames matched to the view bounds. Repeating an application with an
// equal mask and bounds does not touch the layer.
type Applicator struct {
	layer video.Layer

	mask      *Mask
	bounds    geom.Rect
	hasBounds bool
}

// NewApplicator creates an Applicator for layer. A nil layer makes every
// call a no-op.
func NewApplicator(layer video.Layer) *Applicator {
	return &Applicator{layer: layer}
}

// Apply resizes the layer and mask frames to bounds and binds m when it
// differs from the bound mask. A nil m keeps whatever mask is bound, so the
// video stays unmasked until the first successful rasterization. It
// reports whether the layer was touched.
func (a *Applicator) Apply(m *Mask, bounds geom.Rect) bool {
	if a.layer == nil {
		return false
	}

	changed := false
	if !a.hasBounds || a.bounds != bounds {
		a.layer.SetFrame(bounds)
		a.layer.SetMaskFrame(bounds)
		a.bounds, a.hasBounds = bounds, true
		changed = true
	}
	if m != nil && !m.Equal(a.mask) {
		a.layer.SetMask(m)
		a.mask = m
		changed = true
	}
	return changed
}

// Mask returns the mask currently bound to the layer, or nil.
func (a *Applicator) Mask() *Mask { return a.mask }
