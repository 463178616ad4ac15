package rules

import (
	"context"
	"regexp"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// Pattern validates a string against the supplied regular expression.
// Non-string input fails.
func Pattern(re *regexp.Regexp, opts ...Option) validate.Func {
	msg := resolveMessage("pattern", map[string]any{"pattern": re.String()}, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok || !re.MatchString(s) {
			return msg, nil
		}
		return "", nil
	}
}
