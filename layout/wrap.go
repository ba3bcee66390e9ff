package layout

import "unicode"

// cell is one rune of the flattened rich text and the run it came from.
type cell struct {
	r   rune
	run int
}

// piece is a contiguous slice of one run within a line.
type piece struct {
	text string
	run  int
}

// line is a wrapped line: its pieces plus metrics resolved from its faces.
type line struct {
	pieces []piece

	// width excludes trailing whitespace.
	width float64

	ascent, descent, gap float64

	// end is the exclusive rune offset into the whole text consumed once
	// this line is laid out, counting a terminating hard break.
	end int
}

func (l *line) height() float64 { return l.ascent + l.descent }

// measureFunc returns the advance of cells[i:j], trailing whitespace excluded.
type measureFunc func(cells []cell) float64

// wrapParagraph breaks one paragraph (no hard breaks) into line spans.
// Each span is a [start, end) pair into cells. Words break at whitespace;
// words wider than maxWidth fall back to character breaks. A line always
// holds at least one rune.
func wrapParagraph(cells []cell, maxWidth float64, measure measureFunc) [][2]int {
	if len(cells) == 0 {
		return [][2]int{{0, 0}}
	}

	var spans [][2]int
	start := 0
	for start < len(cells) {
		end := fitWords(cells, start, maxWidth, measure)
		if end == start {
			end = fitChars(cells, start, maxWidth, measure)
		}
		spans = append(spans, [2]int{start, end})
		start = end
	}
	return spans
}

// fitWords returns the largest word boundary end > start such that
// cells[start:end] fits, or start when not even the first word fits.
func fitWords(cells []cell, start int, maxWidth float64, measure measureFunc) int {
	best := start
	i := start
	for i < len(cells) {
		j := nextWordEnd(cells, i)
		if !fits(measure(cells[start:j]), maxWidth) {
			break
		}
		best = j
		i = j
	}
	return best
}

// fitChars returns the largest end such that cells[start:end] fits, and at
// least start+1.
func fitChars(cells []cell, start int, maxWidth float64, measure measureFunc) int {
	end := start + 1
	for end < len(cells) && fits(measure(cells[start:end+1]), maxWidth) {
		end++
	}
	// Keep the whitespace that follows a broken word on this line.
	for end < len(cells) && unicode.IsSpace(cells[end].r) {
		end++
	}
	return end
}

// nextWordEnd returns the index just past the word starting at i and the
// whitespace that trails it.
func nextWordEnd(cells []cell, i int) int {
	for i < len(cells) && !unicode.IsSpace(cells[i].r) {
		i++
	}
	for i < len(cells) && unicode.IsSpace(cells[i].r) {
		i++
	}
	return i
}

// trimTrailingSpace drops trailing whitespace cells.
func trimTrailingSpace(cells []cell) []cell {
	n := len(cells)
	for n > 0 && unicode.IsSpace(cells[n-1].r) {
		n--
	}
	return cells[:n]
}

// splitPieces groups cells into same-run pieces.
func splitPieces(cells []cell) []piece {
	var out []piece
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i == len(cells) || cells[i].run != cells[start].run {
			rs := make([]rune, i-start)
			for k := range rs {
				rs[k] = cells[start+k].r
			}
			out = append(out, piece{text: string(rs), run: cells[start].run})
			start = i
		}
	}
	return out
}

const epsilon = 1e-6

func fits(w, maxWidth float64) bool {
	return w <= maxWidth+epsilon
}
