package access

import (
	"github.com/gogpu/videotext/geom"
)

// Role is the accessibility role of an element.
type Role int

const (
	RoleNone Role = iota
	RoleStaticText
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleStaticText:
		return "static-text"
	default:
		return "unknown"
	}
}

// Element is the metadata handed to the assistive-technology bridge.
type Element struct {
	// Frame is the drawn text region in screen coordinates.
	Frame geom.Rect

	// Label is the spoken text. HasLabel distinguishes "" from no label.
	Label    string
	HasLabel bool

	Role Role
}

// Bridge receives published elements.
type Bridge interface {
	Publish(Element)
}

// BridgeFunc adapts a function to Bridge.
type BridgeFunc func(Element)

// Publish implements Bridge.
func (f BridgeFunc) Publish(e Element) { f(e) }

// ScreenMapper converts view-local rectangles to screen coordinates.
type ScreenMapper interface {
	ToScreen(local geom.Rect) geom.Rect
}

// Offset is a ScreenMapper for a view whose local origin sits at the given
// screen point.
type Offset geom.Point

// ToScreen implements ScreenMapper.
func (o Offset) ToScreen(local geom.Rect) geom.Rect {
	return local.Translate(geom.Point(o))
}
