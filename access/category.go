// Package access carries the accessibility side of videotext: the system
// text-size preference and the element published to assistive technology.
package access

import "strings"

// SizeCategory is the user's preferred text size, ordered smallest to
// largest. The zero value is SizeUnspecified.
type SizeCategory int

const (
	SizeUnspecified SizeCategory = iota
	SizeExtraSmall
	SizeSmall
	SizeMedium
	SizeLarge
	SizeExtraLarge
	SizeExtraExtraLarge
	SizeExtraExtraExtraLarge
	SizeAccessibilityMedium
	SizeAccessibilityLarge
	SizeAccessibilityExtraLarge
	SizeAccessibilityExtraExtraLarge
	SizeAccessibilityExtraExtraExtraLarge
)

// SizeDefault is the category used when the host reports nothing.
const SizeDefault = SizeLarge

// maxCategory is the largest tabulated category; larger values clamp to it.
const maxCategory = SizeAccessibilityExtraExtraExtraLarge

var categories = [...]struct {
	name  string
	delta float64
}{
	SizeUnspecified:                       {"unspecified", 0},
	SizeExtraSmall:                        {"extra-small", -3},
	SizeSmall:                             {"small", -2},
	SizeMedium:                            {"medium", -1},
	SizeLarge:                             {"large", 0},
	SizeExtraLarge:                        {"extra-large", 2},
	SizeExtraExtraLarge:                   {"extra-extra-large", 4},
	SizeExtraExtraExtraLarge:              {"extra-extra-extra-large", 6},
	SizeAccessibilityMedium:               {"accessibility-medium", 11},
	SizeAccessibilityLarge:                {"accessibility-large", 17},
	SizeAccessibilityExtraLarge:           {"accessibility-extra-large", 23},
	SizeAccessibilityExtraExtraLarge:      {"accessibility-extra-extra-large", 29},
	SizeAccessibilityExtraExtraExtraLarge: {"accessibility-extra-extra-extra-large", 35},
}

// Delta returns the point-size delta for c. Categories above the largest
// clamp to its delta; unspecified or negative categories add nothing.
func (c SizeCategory) Delta() float64 {
	switch {
	case c <= SizeUnspecified:
		return 0
	case c > maxCategory:
		return categories[maxCategory].delta
	default:
		return categories[c].delta
	}
}

// String returns the kebab-case category name.
func (c SizeCategory) String() string {
	if c < 0 || int(c) >= len(categories) {
		return "unknown"
	}
	return categories[c].name
}

// ParseSizeCategory parses a kebab-case category name such as
// "accessibility-large". Unknown names return SizeUnspecified and false.
func ParseSizeCategory(s string) (SizeCategory, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, c := range categories {
		if i != int(SizeUnspecified) && c.name == s {
			return SizeCategory(i), true
		}
	}
	return SizeUnspecified, false
}

// Preferences reports the current system text-size preference. It is
// polled on every rasterization pass, so implementations must return the
// live value.
type Preferences interface {
	SizeCategory() SizeCategory
}

// PreferencesFunc adapts a function to Preferences.
type PreferencesFunc func() SizeCategory

// SizeCategory implements Preferences.
func (f PreferencesFunc) SizeCategory() SizeCategory { return f() }

// Fixed is a Preferences that always reports the same category.
type Fixed SizeCategory

// SizeCategory implements Preferences.
func (f Fixed) SizeCategory() SizeCategory { return SizeCategory(f) }
