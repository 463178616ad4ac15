package rules

import (
	"context"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// Required fails for nil, "", and zero-length slices or maps. It is the only
// rule without the empty-value bypass.
func Required(opts ...Option) validate.Func {
	msg := resolveMessage("required", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isBlank(value) {
			return msg, nil
		}
		return "", nil
	}
}

// MinLength validates that a string or slice has at least min elements.
// Values of other types have length 0.
func MinLength(min int, opts ...Option) validate.Func {
	msg := resolveMessage("min_length", map[string]any{"min": min}, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		if length(value) < min {
			return msg, nil
		}
		return "", nil
	}
}

// MaxLength validates that a string or slice has at most max elements.
func MaxLength(max int, opts ...Option) validate.Func {
	msg := resolveMessage("max_length", map[string]any{"max": max}, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		if length(value) > max {
			return msg, nil
		}
		return "", nil
	}
}
