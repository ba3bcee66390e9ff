package text

import "strings"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Alignment specifies paragraph alignment within a layout width.
type Alignment int

const (
	// AlignNatural follows the writing direction's leading edge. For
	// placement it behaves as AlignLeft. It is the zero value.
	AlignNatural Alignment = iota
	// AlignLeft aligns text to the left edge.
	AlignLeft
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
	// AlignJustify is placed like AlignCenter; lines are not stretched.
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignNatural:
		return "Natural"
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// ParseAlignment parses a case-insensitive alignment name.
// Unknown names report false and return AlignNatural.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "natural", "":
		return AlignNatural, true
	case "left":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	case "justify", "justified":
		return AlignJustify, true
	default:
		return AlignNatural, false
	}
}

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}
