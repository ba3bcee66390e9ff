package videotext

import (
	"github.com/gogpu/videotext/access"
	"github.com/gogpu/videotext/rich"
	"github.com/gogpu/videotext/text"
)

// minPixelSize is the smallest font size handed to the typesetter.
const minPixelSize = 1.0

// PlainText is a string with an optional font and alignment. The zero Font
// selects text.DefaultFont.
type PlainText struct {
	Text  string
	Font  text.Font
	Align text.Alignment
}

// TextSource holds both text inputs. Rich wins when it has characters;
// otherwise Plain is used.
type TextSource struct {
	Plain PlainText
	Rich  rich.Text
}

// IsEmpty reports whether neither input has characters.
func (s TextSource) IsEmpty() bool {
	return s.Rich.IsEmpty() && s.Plain.Text == ""
}

// Label returns the accessibility label: the plain string if present, else
// the plain projection of the rich text.
func (s TextSource) Label() (string, bool) {
	if s.Plain.Text != "" {
		return s.Plain.Text, true
	}
	if !s.Rich.IsEmpty() {
		return s.Rich.String(), true
	}
	return "", false
}

// Resolve turns src into one normalized run: font size
// (base + category delta) * scale, opaque MaskColor fill and the source's
// alignment. prefs is polled here on every call.
//
// For rich text the first run's font and alignment apply to the whole
// string; other per-run fonts and all colors are discarded.
func Resolve(src TextSource, prefs access.Preferences, scale float64) rich.Text {
	if src.IsEmpty() {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	cat := access.SizeDefault
	if prefs != nil {
		cat = prefs.SizeCategory()
	}

	var (
		base  text.Font
		align text.Alignment
		body  rich.Text
	)
	if !src.Rich.IsEmpty() {
		first, _ := src.Rich.FirstStyle()
		base, align, body = first.Font, first.Align, src.Rich
	} else {
		base, align = src.Plain.Font, src.Plain.Align
		body = rich.NewText(src.Plain.Text, rich.Style{})
	}

	base = baseFont(base)
	size := max((base.Size+cat.Delta())*scale, minPixelSize)

	return body.Restyle(rich.Style{
		Font:  base.WithSize(size),
		Fill:  MaskColor,
		Align: align,
	})
}

// baseFont fills in the large-title defaults for an unset source or size.
func baseFont(f text.Font) text.Font {
	def := text.DefaultFont()
	if f.Source == nil {
		f.Source = def.Source
	}
	if !(f.Size > 0) {
		f.Size = def.Size
	}
	return f
}
