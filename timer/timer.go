package timer

import (
	"context"
	"sync"
	"time"
)

// Timer is a cooperative deadline flag. The zero value is a valid, unarmed
// Timer: Finished always reports false until Start is called.
//
// Concurrency: Finished is safe to call from any number of goroutines
// concurrently, including while another goroutine calls Start or Close.
type Timer struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New returns an unarmed Timer. Use Start to arm it with a deadline.
func New() *Timer {
	return &Timer{}
}

// Start arms the timer: after d elapses, Finished begins reporting true.
// Calling Start more than once has no effect beyond the first call — a
// Timer is armed at most once in its lifetime, matching the single-shot
// deadline described for the search entry point.
func (t *Timer) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}
	t.ctx, t.cancel = context.WithTimeout(context.Background(), d)
}

// Finished reports whether the deadline has elapsed. It is false if the
// timer was never started, and remains false strictly before the duration
// passed to Start has elapsed. A Close call alone, without the deadline
// itself having passed, does not make Finished report true.
func (t *Timer) Finished() bool {
	t.mu.Lock()
	ctx := t.ctx
	t.mu.Unlock()
	if ctx == nil {
		return false
	}

	return ctx.Err() == context.DeadlineExceeded
}

// Close releases the timer's resources, cancelling the background countdown
// immediately regardless of whether the deadline has elapsed. Calling Close
// on an unarmed or already-closed Timer is a no-op. Close does not make
// Finished report true; it only stops the countdown from firing later —
// Finished distinguishes genuine deadline expiry (context.DeadlineExceeded)
// from the context.Canceled that Close itself produces.
func (t *Timer) Close() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
