package schema

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/dmitrymomot/formval/pkg/messages"
	"github.com/dmitrymomot/formval/pkg/validate"
)

// Adapter bridges an external object schema into per-field validators.
// Field names cannot be enumerated from an opaque schema, so validators are
// constructed lazily per requested name and memoized.
type Adapter struct {
	ext External

	mu     sync.Mutex
	fields map[string]validate.Func
}

// NewAdapter wraps an external schema. The constructor has no side effects;
// nothing is parsed until a field validator runs.
func NewAdapter(ext External) *Adapter {
	return &Adapter{ext: ext, fields: make(map[string]validate.Func)}
}

// Field returns the validator for the named field, building and caching it
// on first access. Names the schema does not know yield a validator that
// always resolves valid, because no reported issue will ever address them.
func (a *Adapter) Field(name string) validate.Func {
	a.mu.Lock()
	defer a.mu.Unlock()
	if fn, ok := a.fields[name]; ok {
		return fn
	}
	fn := a.fieldValidator(name)
	a.fields[name] = fn
	return fn
}

// fieldValidator re-validates the entire current value set against the
// schema and extracts the issue addressed to this field, if any.
func (a *Adapter) fieldValidator(name string) validate.Func {
	return func(ctx context.Context, _ any, values validate.Values) (string, error) {
		input := map[string]any(maps.Clone(values))
		if input == nil {
			input = map[string]any{}
		}

		res, failure := safeParse(a.ext, input)
		if failure != "" {
			return failure, nil
		}
		if res.Success {
			return "", nil
		}

		for _, issue := range res.Issues {
			if len(issue.Path) > 0 && issue.Path[0] == name {
				return issueMessage(issue), nil
			}
		}

		// A single pathless issue belongs to the sole field, when there is one.
		if len(res.Issues) == 1 && len(res.Issues[0].Path) == 0 && len(values) == 1 {
			if _, ok := values[name]; ok {
				return issueMessage(res.Issues[0]), nil
			}
		}
		return "", nil
	}
}

// SingleField wraps an external schema that validates one bare value, with
// no surrounding object. The first reported issue becomes the failure
// message.
func SingleField(ext External) validate.Func {
	return func(ctx context.Context, value any, _ validate.Values) (string, error) {
		res, failure := safeParse(ext, value)
		if failure != "" {
			return failure, nil
		}
		if res.Success {
			return "", nil
		}
		if len(res.Issues) > 0 {
			return issueMessage(res.Issues[0]), nil
		}
		return fallbackMessage(), nil
	}
}

// safeParse runs Parse with panic recovery. A panicking schema library is a
// validation failure, not a fault: the recovered value is flattened to a
// message so the field shows something sensible instead of crashing the
// form.
func safeParse(ext External, input any) (res Result, failure string) {
	defer func() {
		if r := recover(); r != nil {
			failure = recoveredMessage(r)
		}
	}()
	return ext.Parse(input), ""
}

// recoveredMessage extracts the best available text from a recovered panic:
// the first issue message when the panic carries a Result, then the panic
// value's own text, then the generic fallback.
func recoveredMessage(r any) string {
	switch v := r.(type) {
	case Result:
		if len(v.Issues) > 0 && v.Issues[0].Message != "" {
			return v.Issues[0].Message
		}
	case error:
		if v.Error() != "" {
			return v.Error()
		}
	case string:
		if v != "" {
			return v
		}
	default:
		if s := fmt.Sprint(v); s != "" && s != "<nil>" {
			return s
		}
	}
	return fallbackMessage()
}

func issueMessage(issue Issue) string {
	if issue.Message != "" {
		return issue.Message
	}
	return fallbackMessage()
}

func fallbackMessage() string {
	return messages.Get("validation_error", nil)
}
