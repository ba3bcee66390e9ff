// Package rich holds styled text: a sequence of runs, each a string with one
// set of style attributes. Text can be projected back to its plain string.
package rich

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/videotext/text"
)

// Style is the attribute set shared by the characters of one run.
type Style struct {
	// Font is the run's font. The zero Font means "unset".
	Font text.Font

	// Fill is the foreground color. Nil means "unset".
	Fill color.Color

	// Align is the paragraph alignment.
	Align text.Alignment
}

// Run is a span of characters sharing one Style.
type Run struct {
	Text  string
	Style Style
}

// Text is the rich text representation: an ordered list of runs whose
// concatenated strings form the plain text.
type Text []Run

// NewText returns a Text with a single run.
func NewText(s string, style Style) Text {
	return Text{{Text: s, Style: style}}
}

// Add appends a run and returns the extended Text. Empty strings are dropped.
func (tx Text) Add(s string, style Style) Text {
	if s == "" {
		return tx
	}
	return append(tx, Run{Text: s, Style: style})
}

// String returns the plain-text projection.
func (tx Text) String() string {
	switch len(tx) {
	case 0:
		return ""
	case 1:
		return tx[0].Text
	}
	var b strings.Builder
	for _, r := range tx {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Len returns the total number of runes.
func (tx Text) Len() int {
	n := 0
	for _, r := range tx {
		n += utf8.RuneCountInString(r.Text)
	}
	return n
}

// IsEmpty reports whether there are no characters.
func (tx Text) IsEmpty() bool {
	for _, r := range tx {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// FirstStyle returns the style of the first non-empty run.
func (tx Text) FirstStyle() (Style, bool) {
	for _, r := range tx {
		if r.Text != "" {
			return r.Style, true
		}
	}
	return Style{}, false
}

// Restyle returns a single-run copy of tx with style applied across the full
// range. The receiver is not modified.
func (tx Text) Restyle(style Style) Text {
	if tx.IsEmpty() {
		return nil
	}
	return Text{{Text: tx.String(), Style: style}}
}

// Clone returns a copy whose run slice does not alias tx.
func (tx Text) Clone() Text {
	if tx == nil {
		return nil
	}
	out := make(Text, len(tx))
	copy(out, tx)
	return out
}
