package text

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		font:   f,
		config: config,
	}
	s.addr = s
	s.name = config.name
	if s.name == "" {
		s.name = familyName(f)
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// The returned Face must be closed by the caller.
// Panics if s is nil (e.g. when a NewFontSource error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSource?")
	}
	s.copyCheck()

	if !(size > 0) || math.IsInf(size, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSize, size)
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(config.hinting),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{
		source: s,
		size:   size,
		config: config,
		face:   otFace,
	}, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Data returns the raw font bytes. The slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
