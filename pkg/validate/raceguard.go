package validate

import (
	"context"
	"sync/atomic"
	"time"
)

// RaceGuard wraps a validator with a generation counter so that only the
// result of the most recently started call is ever surfaced. Every call takes
// the next generation id before invoking the validator; when the validator
// settles, a call that is no longer the latest resolves ("", nil): a stale
// response is neither an error nor a confirmation, it is silence.
//
// Validator faults are propagated unchanged; staleness never suppresses an
// error. The counter is private to the wrapper, so independently constructed
// guards around the same validator do not interfere.
func RaceGuard(fn Func) Func {
	var latest atomic.Uint64
	return func(ctx context.Context, value any, values Values) (string, error) {
		id := latest.Add(1)

		msg, err := fn(ctx, value, values)
		if err != nil {
			return "", err
		}
		if latest.Load() != id {
			return "", nil
		}
		return msg, nil
	}
}

// Async combines both temporal wrappers for validators that do real work
// (network checks and the like): debounce admits calls, the race guard vets
// results. The guard wraps the innermost validator so even the debounced
// trailing invocation's result passes through staleness checking.
func Async(fn Func, delay time.Duration, opts ...DebounceOption) Func {
	return Debounce(RaceGuard(fn), delay, opts...)
}
