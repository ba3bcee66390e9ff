package text

import "sync"

// Shaper measures runs of text set in a face.
// Implementations provide different levels of shaping support:
//   - BuiltinShaper: golang.org/x/image advances plus kerning
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Advance returns the horizontal advance of s in pixels.
	Advance(s string, face *Face) float64
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = BuiltinShaper{}
)

// SetDefaultShaper sets the shaper returned by DefaultShaper.
// Pass nil to reset to BuiltinShaper.
func SetDefaultShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = BuiltinShaper{}
	}
	globalShaper = s
}

// DefaultShaper returns the current default shaper.
func DefaultShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// BuiltinShaper measures with the face's own advances and kerning pairs.
// This matches what font.Drawer produces when the run is drawn.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Advance implements Shaper.
func (BuiltinShaper) Advance(s string, face *Face) float64 {
	if s == "" || face == nil {
		return 0
	}
	return face.Advance(s)
}
