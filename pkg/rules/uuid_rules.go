package rules

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// UUID validates the canonical 36-character UUID form, with a cheap shape
// check before the full parse.
func UUID(opts ...Option) validate.Func {
	msg := resolveMessage("uuid", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok || !isValidUUID(s) {
			return msg, nil
		}
		return "", nil
	}
}

func isValidUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
