package rules

import (
	"context"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// OneOf validates membership in the allowed set. Equality is strict and
// type-sensitive: "1" is not 1.
func OneOf(allowed []any, opts ...Option) validate.Func {
	msg := resolveMessage("one_of", map[string]any{"allowed": allowed}, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		for _, candidate := range allowed {
			if equal(value, candidate) {
				return "", nil
			}
		}
		return msg, nil
	}
}

// Matches validates that the value strictly equals the named field's value
// in the full value set. The usual pairing is a password confirmation field.
func Matches(field string, opts ...Option) validate.Func {
	msg := resolveMessage("matches", map[string]any{"field": field}, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		if !equal(value, values[field]) {
			return msg, nil
		}
		return "", nil
	}
}
