package videotext

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/videotext/access"
	"github.com/gogpu/videotext/rich"
	"github.com/gogpu/videotext/text"
)

func regularSource(t *testing.T) *text.FontSource {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	require.NoError(t, err)
	return src
}

func TestResolveCategoryDeltas(t *testing.T) {
	src := regularSource(t)
	base := text.Font{Source: src, Size: 20}

	tests := []struct {
		cat  access.SizeCategory
		want float64
	}{
		{access.SizeUnspecified, 20},
		{access.SizeExtraSmall, 17},
		{access.SizeSmall, 18},
		{access.SizeMedium, 19},
		{access.SizeLarge, 20},
		{access.SizeExtraLarge, 22},
		{access.SizeExtraExtraLarge, 24},
		{access.SizeExtraExtraExtraLarge, 26},
		{access.SizeAccessibilityMedium, 31},
		{access.SizeAccessibilityLarge, 37},
		{access.SizeAccessibilityExtraLarge, 43},
		{access.SizeAccessibilityExtraExtraLarge, 49},
		{access.SizeAccessibilityExtraExtraExtraLarge, 55},
		{access.SizeAccessibilityExtraExtraExtraLarge + 4, 55},
	}
	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			got := Resolve(TextSource{Plain: PlainText{Text: "Hi", Font: base}}, access.Fixed(tt.cat), 2)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want*2, got[0].Style.Font.Size)
			assert.Same(t, src, got[0].Style.Font.Source)
		})
	}
}

func TestResolveDefaultFont(t *testing.T) {
	got := Resolve(TextSource{Plain: PlainText{Text: "Hello"}}, access.Fixed(access.SizeDefault), 3)
	require.Len(t, got, 1)
	assert.Same(t, text.DefaultSource(), got[0].Style.Font.Source)
	assert.Equal(t, text.LargeTitleSize*3, got[0].Style.Font.Size)
	assert.Equal(t, text.AlignNatural, got[0].Style.Align)
}

func TestResolveNilPreferences(t *testing.T) {
	got := Resolve(TextSource{Plain: PlainText{Text: "Hello"}}, nil, 1)
	require.Len(t, got, 1)
	assert.Equal(t, text.LargeTitleSize, got[0].Style.Font.Size)
}

func TestResolveClampsToMinimumPixelSize(t *testing.T) {
	base := text.Font{Source: regularSource(t), Size: 2}
	got := Resolve(TextSource{Plain: PlainText{Text: "x", Font: base}}, access.Fixed(access.SizeExtraSmall), 1)
	require.Len(t, got, 1)
	assert.Equal(t, minPixelSize, got[0].Style.Font.Size)
}

func TestResolveNonPositiveScale(t *testing.T) {
	base := text.Font{Source: regularSource(t), Size: 20}
	got := Resolve(TextSource{Plain: PlainText{Text: "x", Font: base}}, access.Fixed(access.SizeLarge), 0)
	require.Len(t, got, 1)
	assert.Equal(t, 20.0, got[0].Style.Font.Size)
}

func TestResolveFillIsMaskColor(t *testing.T) {
	tx := rich.NewText("red", rich.Style{Fill: color.RGBA{R: 0xff, A: 0xff}})
	tx = tx.Add(" blue", rich.Style{Fill: color.RGBA{B: 0xff, A: 0xff}})

	got := Resolve(TextSource{Rich: tx}, access.Fixed(access.SizeDefault), 1)
	require.Len(t, got, 1)
	assert.Equal(t, MaskColor, got[0].Style.Fill)
	assert.Equal(t, "red blue", got[0].Text)
}

func TestResolveRichPrecedence(t *testing.T) {
	tx := rich.NewText("rich", rich.Style{Align: text.AlignRight})
	got := Resolve(TextSource{
		Plain: PlainText{Text: "plain", Align: text.AlignCenter},
		Rich:  tx,
	}, access.Fixed(access.SizeDefault), 1)

	require.Len(t, got, 1)
	assert.Equal(t, "rich", got[0].Text)
	assert.Equal(t, text.AlignRight, got[0].Style.Align)
}

func TestResolveSamplesFirstRun(t *testing.T) {
	src := regularSource(t)
	tx := rich.NewText("", rich.Style{Font: text.Font{Size: 99}}).
		Add("first", rich.Style{Font: text.Font{Source: src, Size: 10}, Align: text.AlignCenter}).
		Add("second", rich.Style{Font: text.Font{Size: 50}, Align: text.AlignRight})

	got := Resolve(TextSource{Rich: tx}, access.Fixed(access.SizeExtraLarge), 1)
	require.Len(t, got, 1)
	assert.Equal(t, "firstsecond", got[0].Text)
	assert.Same(t, src, got[0].Style.Font.Source)
	assert.Equal(t, 12.0, got[0].Style.Font.Size)
	assert.Equal(t, text.AlignCenter, got[0].Style.Align)
}

func TestResolveEmptyRichFallsBackToPlain(t *testing.T) {
	got := Resolve(TextSource{
		Plain: PlainText{Text: "plain"},
		Rich:  rich.Text{{Text: ""}},
	}, access.Fixed(access.SizeDefault), 1)
	require.Len(t, got, 1)
	assert.Equal(t, "plain", got[0].Text)
}

func TestResolveEmpty(t *testing.T) {
	assert.Nil(t, Resolve(TextSource{}, access.Fixed(access.SizeDefault), 1))
}

func TestResolvePollsPreferences(t *testing.T) {
	calls := 0
	prefs := access.PreferencesFunc(func() access.SizeCategory {
		calls++
		return access.SizeLarge
	})
	src := TextSource{Plain: PlainText{Text: "x"}}
	Resolve(src, prefs, 1)
	Resolve(src, prefs, 1)
	assert.Equal(t, 2, calls)
}

func TestTextSourceLabel(t *testing.T) {
	tests := []struct {
		name    string
		src     TextSource
		want    string
		wantHas bool
	}{
		{"empty", TextSource{}, "", false},
		{"plain", TextSource{Plain: PlainText{Text: "Hello"}}, "Hello", true},
		{"rich only", TextSource{Rich: rich.NewText("A", rich.Style{}).Add("B", rich.Style{})}, "AB", true},
		{"plain wins", TextSource{Plain: PlainText{Text: "p"}, Rich: rich.NewText("r", rich.Style{})}, "p", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, has := tt.src.Label()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantHas, has)
		})
	}
}
