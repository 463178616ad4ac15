package rules

import (
	"context"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// Min validates that a number (or numeric string) is at least min.
// A value that does not parse as a number fails.
func Min(min float64, opts ...Option) validate.Func {
	msg := resolveMessage("min", map[string]any{"min": min}, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		n, ok := asNumber(value)
		if !ok || n < min {
			return msg, nil
		}
		return "", nil
	}
}

// Max validates that a number (or numeric string) is at most max.
func Max(max float64, opts ...Option) validate.Func {
	msg := resolveMessage("max", map[string]any{"max": max}, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		n, ok := asNumber(value)
		if !ok || n > max {
			return msg, nil
		}
		return "", nil
	}
}
