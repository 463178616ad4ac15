package validate

import (
	"context"
	"sync"
	"time"
)

// DebounceOption configures a debounced validator.
type DebounceOption func(*debouncer)

// WithLeading makes the wrapper invoke the validator immediately when enough
// quiet time has passed since the previous real invocation. Off by default.
func WithLeading() DebounceOption {
	return func(d *debouncer) {
		d.leading = true
	}
}

// WithoutTrailing disables the trailing-edge invocation. On by default;
// disabling both edges yields a wrapper that only ever replays its last
// computed result.
func WithoutTrailing() DebounceOption {
	return func(d *debouncer) {
		d.trailing = false
	}
}

// Debounce wraps a validator so that rapid successive calls collapse into at
// most one underlying invocation per quiet window of the given delay.
//
// With the default trailing edge, each call (re)schedules the wrapper's
// single timer with its own arguments; when the timer finally fires, the
// validator runs once with the arguments of the last call, and every caller
// collapsed into that window observes the result of that one invocation.
// With the leading edge enabled, a call arriving after a full quiet window
// runs the validator immediately, cancelling any pending timer (whose waiters
// then share the leading invocation's result). A call admitted by neither
// edge resolves with the wrapper's last computed result without invoking the
// validator.
//
// Each wrapper owns its own timer and bookkeeping; two wrappers around the
// same validator never interfere with each other.
//
// A caller whose context is cancelled while waiting for the timer returns
// ctx.Err(); the scheduled invocation still runs and updates wrapper state.
func Debounce(fn Func, delay time.Duration, opts ...DebounceOption) Func {
	d := &debouncer{fn: fn, delay: delay, trailing: true}
	for _, opt := range opts {
		opt(d)
	}
	return d.call
}

type debouncer struct {
	fn       Func
	delay    time.Duration
	leading  bool
	trailing bool

	mu      sync.Mutex
	timer   *time.Timer
	pending *pendingCall
	lastRun time.Time // last real invocation (leading-edge gate)
	lastMsg string
	lastErr error
}

// pendingCall carries the arguments of the most recent call in the current
// window and the shared completion signal its collapsed callers wait on.
// Result fields are written before done is closed.
type pendingCall struct {
	ctx    context.Context
	value  any
	values Values

	done chan struct{}
	msg  string
	err  error
}

func (d *debouncer) call(ctx context.Context, value any, values Values) (string, error) {
	d.mu.Lock()

	if d.leading && (d.lastRun.IsZero() || time.Since(d.lastRun) >= d.delay) {
		if d.timer != nil {
			d.timer.Stop()
			d.timer = nil
		}
		p := d.pending
		d.pending = nil
		d.lastRun = time.Now()
		d.mu.Unlock()

		msg, err := d.fn(ctx, value, values)

		d.mu.Lock()
		d.lastMsg, d.lastErr = msg, err
		d.mu.Unlock()
		if p != nil {
			p.msg, p.err = msg, err
			close(p.done)
		}
		return msg, err
	}

	if d.trailing {
		p := d.pending
		if p == nil {
			p = &pendingCall{done: make(chan struct{})}
			d.pending = p
		}
		// Latest call wins: its arguments replace whatever was scheduled.
		p.ctx, p.value, p.values = ctx, value, values
		if d.timer != nil {
			d.timer.Stop()
		}
		d.timer = time.AfterFunc(d.delay, d.fire)
		d.mu.Unlock()

		select {
		case <-p.done:
			return p.msg, p.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	msg, err := d.lastMsg, d.lastErr
	d.mu.Unlock()
	return msg, err
}

func (d *debouncer) fire() {
	d.mu.Lock()
	p := d.pending
	d.pending = nil
	d.timer = nil
	if p == nil {
		// A leading-edge call already claimed this window.
		d.mu.Unlock()
		return
	}
	d.lastRun = time.Now()
	ctx, value, values := p.ctx, p.value, p.values
	d.mu.Unlock()

	msg, err := d.fn(ctx, value, values)

	d.mu.Lock()
	d.lastMsg, d.lastErr = msg, err
	d.mu.Unlock()
	p.msg, p.err = msg, err
	close(p.done)
}
