package layout

import (
	"log/slog"

	"github.com/gogpu/videotext/text"
)

// Option configures a Typesetter.
type Option func(*Typesetter)

// WithShaper sets the shaper used to measure runs.
// The default is text.DefaultShaper() at construction time.
func WithShaper(s text.Shaper) Option {
	return func(t *Typesetter) {
		if s != nil {
			t.shaper = s
		}
	}
}

// WithHinting sets the hinting mode of the faces the typesetter creates.
func WithHinting(h text.Hinting) Option {
	return func(t *Typesetter) {
		t.hinting = h
	}
}

// WithLineSpacing multiplies the font's line gap. Values <= 0 are ignored.
func WithLineSpacing(f float64) Option {
	return func(t *Typesetter) {
		if f > 0 {
			t.lineSpacing = f
		}
	}
}

// WithLogger sets the logger for face creation failures.
func WithLogger(l *slog.Logger) Option {
	return func(t *Typesetter) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithCacheSize sets how many measured strings the typesetter remembers.
// Zero disables the cache; negative values are ignored.
func WithCacheSize(n int) Option {
	return func(t *Typesetter) {
		if n >= 0 {
			t.cacheSize = n
		}
	}
}
