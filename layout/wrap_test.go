package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cellsOf(s string) []cell {
	var cs []cell
	for _, r := range s {
		cs = append(cs, cell{r: r})
	}
	return cs
}

// monoMeasure treats every non-trailing rune as one unit wide.
func monoMeasure(cs []cell) float64 {
	return float64(len(trimTrailingSpace(cs)))
}

func spanStrings(cs []cell, spans [][2]int) []string {
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		rs := make([]rune, 0, sp[1]-sp[0])
		for _, c := range cs[sp[0]:sp[1]] {
			rs = append(rs, c.r)
		}
		out = append(out, string(rs))
	}
	return out
}

func TestWrapParagraph(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width float64
		want  []string
	}{
		{"fits", "ab cd", 10, []string{"ab cd"}},
		{"word break", "ab cd ef", 5, []string{"ab cd ", "ef"}},
		{"trailing space free", "abc def", 3, []string{"abc ", "def"}},
		{"char break", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"char break keeps space", "abcd ef", 3, []string{"abc", "d ", "ef"}},
		{"narrower than a rune", "ab", 0.5, []string{"a", "b"}},
		{"empty", "", 3, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := cellsOf(tt.in)
			got := spanStrings(cs, wrapParagraph(cs, tt.width, monoMeasure))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitPieces(t *testing.T) {
	cs := []cell{{'a', 0}, {'b', 0}, {'c', 1}, {'d', 2}, {'e', 2}}
	assert.Equal(t, []piece{{"ab", 0}, {"c", 1}, {"de", 2}}, splitPieces(cs))
	assert.Nil(t, splitPieces(nil))
}

func TestAlignOffset(t *testing.T) {
	assert.Equal(t, 0.0, alignOffset(0, 100, 40))
	assert.Equal(t, 60.0, alignOffset(3, 100, 40))
	assert.Equal(t, 30.0, alignOffset(2, 100, 40))
	assert.Equal(t, 30.0, alignOffset(99, 100, 40))
}
