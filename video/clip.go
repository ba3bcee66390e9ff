package video

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"
)

// ErrSeekOutOfRange is returned when seeking outside a clip.
var ErrSeekOutOfRange = errors.New("video: seek out of range")

// Player is the playback control the Looper needs.
type Player interface {
	Seek(pos time.Duration) error
	Play() error
}

// Notifier delivers end-of-playback events. Callbacks may run on any
// goroutine; cancel stops further deliveries and is safe to call more than
// once.
type Notifier interface {
	OnEnd(fn func()) (cancel func())
}

// Clip is an in-memory video: a fixed list of frames shown at a fixed
// frame duration, advanced by Step. It implements FrameSource, Player and
// Notifier and is safe for concurrent use.
type Clip struct {
	mu       sync.Mutex
	frames   []image.Image
	perFrame time.Duration
	pos      int
	playing  bool

	subs   map[int]func()
	nextID int
}

// NewClip creates a paused clip positioned on its first frame.
func NewClip(perFrame time.Duration, frames ...image.Image) *Clip {
	if perFrame <= 0 {
		perFrame = time.Second / 30
	}
	return &Clip{
		frames:   frames,
		perFrame: perFrame,
		subs:     make(map[int]func()),
	}
}

// Frame implements FrameSource.
func (c *Clip) Frame() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pos >= len(c.frames) {
		return nil
	}
	return c.frames[c.pos]
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	return time.Duration(len(c.frames)) * c.perFrame
}

// Playing reports whether the clip is playing.
func (c *Clip) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Position returns the current playback position.
func (c *Clip) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Duration(c.pos) * c.perFrame
}

// Seek implements Player.
func (c *Clip) Seek(pos time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := int(pos / c.perFrame)
	if pos < 0 || idx > len(c.frames) || (idx == len(c.frames) && len(c.frames) > 0) {
		return fmt.Errorf("%w: %v of %v", ErrSeekOutOfRange, pos, time.Duration(len(c.frames))*c.perFrame)
	}
	c.pos = idx
	return nil
}

// Play implements Player.
func (c *Clip) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = true
	return nil
}

// Pause stops playback at the current frame.
func (c *Clip) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
}

// Step advances one frame while playing. Stepping past the last frame stops
// playback, holds the last frame and fires end-of-playback callbacks.
func (c *Clip) Step() {
	c.mu.Lock()
	if !c.playing || len(c.frames) == 0 {
		c.mu.Unlock()
		return
	}
	if c.pos+1 < len(c.frames) {
		c.pos++
		c.mu.Unlock()
		return
	}
	c.playing = false
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// OnEnd implements Notifier.
func (c *Clip) OnEnd(fn func()) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Subscribers returns the number of registered end-of-playback callbacks.
func (c *Clip) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
