package access

import "github.com/gogpu/videotext/geom"

// Synchronizer derives the accessibility element from a placement rectangle
// and publishes it.
type Synchronizer struct {
	bridge Bridge
	screen ScreenMapper

	last    Element
	hasLast bool
}

// NewSynchronizer creates a Synchronizer. A nil screen mapper treats view
// coordinates as screen coordinates; a nil bridge only records elements.
func NewSynchronizer(bridge Bridge, screen ScreenMapper) *Synchronizer {
	if screen == nil {
		screen = Offset{}
	}
	return &Synchronizer{bridge: bridge, screen: screen}
}

// Sync converts placement from rasterization space to view space (dividing
// by scale), then to screen space, and publishes a static-text element with
// label, if one is given.
func (s *Synchronizer) Sync(placement geom.Rect, scale float64, label string, hasLabel bool) Element {
	e := Element{
		Frame:    s.screen.ToScreen(placement.Div(scale)),
		Label:    label,
		HasLabel: hasLabel,
		Role:     RoleStaticText,
	}
	s.last, s.hasLast = e, true
	if s.bridge != nil {
		s.bridge.Publish(e)
	}
	return e
}

// Last returns the most recently published element.
func (s *Synchronizer) Last() (Element, bool) {
	return s.last, s.hasLast
}
