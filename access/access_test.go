package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/videotext/geom"
)

func TestSizeCategoryDelta(t *testing.T) {
	tests := []struct {
		cat   SizeCategory
		delta float64
	}{
		{SizeExtraSmall, -3},
		{SizeSmall, -2},
		{SizeMedium, -1},
		{SizeLarge, 0},
		{SizeExtraLarge, 2},
		{SizeExtraExtraLarge, 4},
		{SizeExtraExtraExtraLarge, 6},
		{SizeAccessibilityMedium, 11},
		{SizeAccessibilityLarge, 17},
		{SizeAccessibilityExtraLarge, 23},
		{SizeAccessibilityExtraExtraLarge, 29},
		{SizeAccessibilityExtraExtraExtraLarge, 35},
		{SizeAccessibilityExtraExtraExtraLarge + 1, 35},
		{SizeAccessibilityExtraExtraExtraLarge + 40, 35},
		{SizeUnspecified, 0},
		{SizeCategory(-7), 0},
	}
	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			assert.Equal(t, tt.delta, tt.cat.Delta())
		})
	}
}

func TestSizeCategoryOrdering(t *testing.T) {
	for c := SizeExtraSmall; c < maxCategory; c++ {
		assert.Less(t, c.Delta(), (c + 1).Delta(), "%v", c)
	}
	assert.Equal(t, SizeLarge, SizeDefault)
}

func TestParseSizeCategory(t *testing.T) {
	for c := SizeExtraSmall; c <= maxCategory; c++ {
		got, ok := ParseSizeCategory(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	got, ok := ParseSizeCategory(" Accessibility-Large ")
	assert.True(t, ok)
	assert.Equal(t, SizeAccessibilityLarge, got)

	for _, s := range []string{"", "huge", "unspecified"} {
		got, ok := ParseSizeCategory(s)
		assert.False(t, ok, s)
		assert.Equal(t, SizeUnspecified, got)
	}
	assert.Equal(t, "unknown", SizeCategory(99).String())
}

func TestPreferencesAdapters(t *testing.T) {
	cat := SizeSmall
	p := PreferencesFunc(func() SizeCategory { return cat })
	assert.Equal(t, SizeSmall, p.SizeCategory())
	cat = SizeExtraLarge
	assert.Equal(t, SizeExtraLarge, p.SizeCategory(), "preferences are live")

	assert.Equal(t, SizeMedium, Fixed(SizeMedium).SizeCategory())
}

func TestSynchronizer(t *testing.T) {
	var got []Element
	s := NewSynchronizer(BridgeFunc(func(e Element) { got = append(got, e) }), Offset{X: 100, Y: 50})

	_, ok := s.Last()
	assert.False(t, ok)

	e := s.Sync(geom.R(20, 40, 200, 60), 2, "Hello World!", true)

	want := Element{
		Frame:    geom.R(110, 70, 100, 30),
		Label:    "Hello World!",
		HasLabel: true,
		Role:     RoleStaticText,
	}
	assert.Equal(t, want, e)
	assert.Equal(t, []Element{want}, got)

	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, want, last)
}

func TestSynchronizer_Defaults(t *testing.T) {
	s := NewSynchronizer(nil, nil)
	e := s.Sync(geom.R(0, 0, 10, 10), 1, "", false)
	assert.Equal(t, geom.R(0, 0, 10, 10), e.Frame)
	assert.False(t, e.HasLabel)
	assert.Equal(t, "static-text", e.Role.String())
}
