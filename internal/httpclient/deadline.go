package httpclient

import (
	"context"
	"io"
	"sync/atomic"
	"time"
)

// watchdog cancels a request once it has been idle for longer than
// timeout: first while waiting for the response headers, then between
// reads of the body. A body that keeps arriving is never cut off.
type watchdog struct {
	timeout time.Duration
	timer   *time.Timer
	fired   atomic.Bool
}

func newWatchdog(ctx context.Context, timeout time.Duration) (context.Context, *watchdog, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	w := &watchdog{timeout: timeout}
	w.timer = time.AfterFunc(timeout, func() {
		w.fired.Store(true)
		cancel()
	})
	return ctx, w, func() {
		w.timer.Stop()
		cancel()
	}
}

// kick restarts the idle window
func (w *watchdog) kick() {
	if w.fired.Load() {
		return
	}
	w.timer.Reset(w.timeout)
}

// expired reports whether the request was cancelled for being idle
func (w *watchdog) expired() bool {
	return w.fired.Load()
}

// idleReader kicks the watchdog whenever body bytes arrive
type idleReader struct {
	r io.Reader
	w *watchdog
}

func (ir *idleReader) Read(p []byte) (int, error) {
	n, err := ir.r.Read(p)
	if n > 0 {
		ir.w.kick()
	}
	return n, err
}
