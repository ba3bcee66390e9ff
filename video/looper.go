package video

import (
	"log/slog"
	"sync/atomic"
	"weak"
)

// LooperOption configures a Looper.
type LooperOption func(*Looper)

// WithLogger sets the logger for seek and play failures.
func WithLogger(l *slog.Logger) LooperOption {
	return func(lp *Looper) {
		if l != nil {
			lp.logger = l
		}
	}
}

// Looper restarts a player from the beginning on every end-of-playback
// event. It holds only a weak reference to its owner: once the owner has
// been collected, or Close was called, events are ignored and the
// subscription is dropped.
type Looper struct {
	player Player
	alive  func() bool
	cancel func()
	logger *slog.Logger

	closed atomic.Bool
	loops  atomic.Uint64
}

// Loop subscribes to n and replays p on every end-of-playback event for as
// long as owner is reachable.
func Loop[T any](owner *T, p Player, n Notifier, opts ...LooperOption) *Looper {
	ref := weak.Make(owner)
	l := &Looper{
		player: p,
		alive:  func() bool { return ref.Value() != nil },
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.cancel = n.OnEnd(l.handleEnd)
	return l
}

func (l *Looper) handleEnd() {
	if l.closed.Load() {
		return
	}
	if !l.alive() {
		l.logger.Debug("video: looper owner gone, unsubscribing")
		l.Close()
		return
	}
	if err := l.player.Seek(0); err != nil {
		l.logger.Warn("video: loop seek failed", slog.String("err", err.Error()))
		return
	}
	if err := l.player.Play(); err != nil {
		l.logger.Warn("video: loop play failed", slog.String("err", err.Error()))
		return
	}
	l.loops.Add(1)
}

// Loops returns how many times playback was restarted.
func (l *Looper) Loops() uint64 { return l.loops.Load() }

// Close unsubscribes from the notifier. It is safe to call more than once
// and from any goroutine.
func (l *Looper) Close() {
	if l.closed.CompareAndSwap(false, true) && l.cancel != nil {
		l.cancel()
	}
}
