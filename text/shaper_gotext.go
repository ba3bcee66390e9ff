package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper measures runs with HarfBuzz shaping from go-text/typesetting,
// so ligatures, GPOS kerning and right-to-left runs are accounted for.
//
//	text.SetDefaultShaper(text.NewGoTextShaper())
//	defer text.SetDefaultShaper(nil)
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font values
// (read-only) and creates a font.Face per call, since go-text faces are not
// safe for concurrent use.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font

	lang language.Language
}

// NewGoTextShaper creates a GoTextShaper shaping with the "en" language tag.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
		lang:      language.NewLanguage("en"),
	}
}

// Advance implements Shaper. Fonts go-text cannot parse fall back to
// BuiltinShaper.
func (s *GoTextShaper) Advance(str string, face *Face) float64 {
	if str == "" || face == nil {
		return 0
	}

	f, err := s.fontFor(face.Source())
	if err != nil {
		return BuiltinShaper{}.Advance(str, face)
	}

	runes := []rune(str)
	dir := di.DirectionLTR
	if DetectDirection(str) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(f),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  s.lang,
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	adv := fixedToFloat(out.Advance)
	if adv < 0 {
		adv = -adv
	}
	return adv
}

func (s *GoTextShaper) fontFor(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	parsed, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = parsed.Font
	return parsed.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
