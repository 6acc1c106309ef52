package engine

import (
	"sync"
	"time"
)

// Watchdog enforces a maximum wall-clock duration for one run. It fires at
// most once per handle, by closing its expiry channel, and communicates with
// the executor only through that single one-shot signal.
type Watchdog struct {
	timeout time.Duration
	timer   *time.Timer
	expired chan struct{}
	cancel  sync.Once
}

// StartWatchdog arms a watchdog that expires after the given timeout. The
// caller owns the handle and must release it with Cancel on every exit path;
// Cancel after expiry is a harmless no-op.
func StartWatchdog(timeout time.Duration) *Watchdog {
	w := &Watchdog{
		timeout: timeout,
		expired: make(chan struct{}),
	}
	w.timer = time.AfterFunc(timeout, func() {
		close(w.expired)
	})
	return w
}

// Expired is closed once the timeout elapses. It never receives a value and
// is never closed after a successful Cancel.
func (w *Watchdog) Expired() <-chan struct{} {
	return w.expired
}

// Cancel releases the watchdog. Idempotent; safe to call after expiry and
// after run completion.
func (w *Watchdog) Cancel() {
	w.cancel.Do(func() {
		w.timer.Stop()
	})
}

// Timeout returns the configured timeout.
func (w *Watchdog) Timeout() time.Duration {
	return w.timeout
}
