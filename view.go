package videotext

import (
	"log/slog"
	"runtime"

	"github.com/gogpu/videotext/access"
	"github.com/gogpu/videotext/geom"
	"github.com/gogpu/videotext/rich"
	"github.com/gogpu/videotext/text"
	"github.com/gogpu/videotext/video"
)

// RenderState is the output of one successful pipeline run.
type RenderState struct {
	// Mask is the rasterized mask, ceil(bounds*scale) pixels.
	Mask *Mask

	// Placement is the drawn text region in device pixels.
	Placement geom.Rect

	// Text is the resolved text that was drawn.
	Text rich.Text

	// Element is the accessibility element that was published.
	Element access.Element
}

// View renders its text as a video mask.
//
// A View has a single mutator: setters and Layout must be called from the
// same goroutine. Only the attached looper runs elsewhere, and it holds no
// strong reference to the View.
type View struct {
	source TextSource
	bounds geom.Size

	scale float64
	prefs access.Preferences

	rasterizer *Rasterizer
	applicator *Applicator
	sync       *access.Synchronizer

	state    RenderState
	hasState bool

	looper *video.Looper
}

// NewView creates a View with no text and zero bounds.
func NewView(opts ...ViewOption) *View {
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &View{
		scale:      o.scale,
		prefs:      o.prefs,
		rasterizer: NewRasterizer(o.resolveTypesetter(), o.alloc),
		applicator: NewApplicator(o.layer),
		sync:       access.NewSynchronizer(o.bridge, o.screen),
	}
}

// SetText sets the plain string. Rich text, if set, keeps precedence.
func (v *View) SetText(s string) { v.source.Plain.Text = s }

// SetFont sets the plain text font. The zero Font selects the default
// large-title font.
func (v *View) SetFont(f text.Font) { v.source.Plain.Font = f }

// SetAlignment sets the plain text alignment.
func (v *View) SetAlignment(a text.Alignment) { v.source.Plain.Align = a }

// SetRichText sets the rich text, which takes precedence over the plain
// string while it has characters. The slice is copied.
func (v *View) SetRichText(tx rich.Text) { v.source.Rich = tx.Clone() }

// ClearRichText removes the rich text so the plain string is used again.
func (v *View) ClearRichText() { v.source.Rich = nil }

// SetBounds sets the bounding box in units.
func (v *View) SetBounds(size geom.Size) { v.bounds = size }

// Text returns the plain string.
func (v *View) Text() string { return v.source.Plain.Text }

// RichText returns a copy of the rich text.
func (v *View) RichText() rich.Text { return v.source.Rich.Clone() }

// Bounds returns the bounding box in units.
func (v *View) Bounds() geom.Size { return v.bounds }

// Scale returns the rasterization scale.
func (v *View) Scale() float64 { return v.scale }

// Layout runs the pipeline for the current inputs and reports whether a
// new mask was produced. When the bounds are degenerate or there is no
// text, the run is skipped and the previous state, including the published
// accessibility element, is kept.
func (v *View) Layout() bool {
	frame := geom.Rect{W: v.bounds.W, H: v.bounds.H}
	if v.bounds.Degenerate() {
		Logger().Debug("videotext: layout skipped, degenerate bounds",
			slog.Float64("width", v.bounds.W), slog.Float64("height", v.bounds.H))
		v.applicator.Apply(nil, frame)
		return false
	}

	resolved := Resolve(v.source, v.prefs, v.scale)
	mask, placement, ok := v.rasterizer.Rasterize(resolved, v.bounds, v.scale)
	if !ok {
		Logger().Debug("videotext: layout skipped, no text")
		v.applicator.Apply(nil, frame)
		return false
	}

	v.applicator.Apply(mask, frame)
	label, hasLabel := v.source.Label()
	element := v.sync.Sync(placement, v.scale, label, hasLabel)

	v.state = RenderState{
		Mask:      mask,
		Placement: placement,
		Text:      resolved,
		Element:   element,
	}
	v.hasState = true

	Logger().Debug("videotext: layout",
		slog.Int("mask_width", mask.Width()),
		slog.Int("mask_height", mask.Height()),
		slog.Float64("placement_x", placement.X),
		slog.Float64("placement_y", placement.Y))
	return true
}

// State returns the last successful render state.
func (v *View) State() (RenderState, bool) { return v.state, v.hasState }

// Mask returns the current mask, or nil before the first successful Layout.
func (v *View) Mask() *Mask { return v.state.Mask }

// Placement returns the current placement in device pixels.
func (v *View) Placement() geom.Rect { return v.state.Placement }

// Accessibility returns the last published accessibility element.
func (v *View) Accessibility() (access.Element, bool) { return v.sync.Last() }

// Attach loops p from the start whenever n reports the end of playback.
// The loop ends when the View is closed or garbage collected. Attaching
// again replaces the previous loop.
func (v *View) Attach(p video.Player, n video.Notifier) {
	if v.looper != nil {
		v.looper.Close()
	}
	l := video.Loop(v, p, n, video.WithLogger(Logger()))
	v.looper = l
	runtime.AddCleanup(v, func(l *video.Looper) { l.Close() }, l)
}

// Close stops looping. The View stays usable for rendering.
func (v *View) Close() error {
	if v.looper != nil {
		v.looper.Close()
		v.looper = nil
	}
	return nil
}
