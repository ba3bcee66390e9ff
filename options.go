package videotext

import (
	"github.com/gogpu/videotext/access"
	"github.com/gogpu/videotext/layout"
	"github.com/gogpu/videotext/video"
)

// ViewOption configures a View during creation.
//
// Example:
//
//	v := videotext.NewView(
//	    videotext.WithScale(3),
//	    videotext.WithPreferences(access.Fixed(access.SizeAccessibilityLarge)),
//	)
type ViewOption func(*viewOptions)

type viewOptions struct {
	scale      float64
	prefs      access.Preferences
	typesetter Typesetter
	alloc      SurfaceAllocator
	layer      video.Layer
	bridge     access.Bridge
	screen     access.ScreenMapper
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		scale: 1,
		prefs: access.Fixed(access.SizeDefault),
		alloc: DefaultAllocator,
	}
}

// WithScale sets the rasterization scale (device pixels per unit).
// Values <= 0 are ignored.
func WithScale(scale float64) ViewOption {
	return func(o *viewOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithPreferences sets the accessor polled for the text-size category on
// every layout pass. The default always reports access.SizeDefault.
func WithPreferences(p access.Preferences) ViewOption {
	return func(o *viewOptions) {
		if p != nil {
			o.prefs = p
		}
	}
}

// WithTypesetter sets the text-layout service. The default is
// layout.New() built at view creation.
func WithTypesetter(ts Typesetter) ViewOption {
	return func(o *viewOptions) {
		o.typesetter = ts
	}
}

// WithSurfaceAllocator sets the allocator for offscreen mask surfaces.
func WithSurfaceAllocator(a SurfaceAllocator) ViewOption {
	return func(o *viewOptions) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithLayer sets the video layer the mask is applied to.
func WithLayer(l video.Layer) ViewOption {
	return func(o *viewOptions) {
		o.layer = l
	}
}

// WithBridge sets the assistive-technology bridge receiving elements.
func WithBridge(b access.Bridge) ViewOption {
	return func(o *viewOptions) {
		o.bridge = b
	}
}

// WithScreenMapper sets the view-to-screen coordinate conversion.
// The default treats view coordinates as screen coordinates.
func WithScreenMapper(m access.ScreenMapper) ViewOption {
	return func(o *viewOptions) {
		o.screen = m
	}
}

func (o *viewOptions) resolveTypesetter() Typesetter {
	if o.typesetter != nil {
		return o.typesetter
	}
	return layout.New(layout.WithLogger(Logger()))
}
