package rich

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/videotext/text"
)

func TestTextProjection(t *testing.T) {
	red := Style{Fill: color.RGBA{R: 0xff, A: 0xff}}
	tx := NewText("Hello ", red).Add("", Style{}).Add("Wörld", Style{Align: text.AlignRight})

	assert.Len(t, tx, 2)
	assert.Equal(t, "Hello Wörld", tx.String())
	assert.Equal(t, 11, tx.Len())
	assert.False(t, tx.IsEmpty())
}

func TestTextEmpty(t *testing.T) {
	var tx Text
	assert.True(t, tx.IsEmpty())
	assert.True(t, Text{{Text: ""}}.IsEmpty())
	assert.Equal(t, "", tx.String())
	assert.Nil(t, tx.Restyle(Style{}))

	_, ok := tx.FirstStyle()
	assert.False(t, ok)
}

func TestFirstStyleSkipsEmptyRuns(t *testing.T) {
	want := Style{Align: text.AlignCenter}
	tx := Text{{Text: "", Style: Style{Align: text.AlignRight}}, {Text: "a", Style: want}}
	got, ok := tx.FirstStyle()
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRestyle(t *testing.T) {
	tx := NewText("ab", Style{Align: text.AlignLeft}).Add("cd", Style{Align: text.AlignRight})
	style := Style{Align: text.AlignCenter, Fill: color.Alpha{A: 0xff}}

	out := tx.Restyle(style)
	assert.Equal(t, Text{{Text: "abcd", Style: style}}, out)
	assert.Equal(t, text.AlignLeft, tx[0].Style.Align, "receiver must not change")
}

func TestClone(t *testing.T) {
	tx := NewText("a", Style{})
	c := tx.Clone()
	c[0].Text = "b"
	assert.Equal(t, "a", tx[0].Text)
	assert.Nil(t, Text(nil).Clone())
}
