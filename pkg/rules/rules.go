package rules

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formval/pkg/messages"
)

// Option customizes a rule validator at construction time. The message is
// resolved once, when the rule is built; registry overrides applied later do
// not retroactively change an already-built rule.
type Option func(*config)

type config struct {
	message     string
	messageFunc func(params map[string]any) string
}

// WithMessage replaces the registry message with a literal string.
func WithMessage(msg string) Option {
	return func(c *config) {
		c.message = msg
	}
}

// WithMessageFunc replaces the registry message with a template function
// invoked with the rule's parameters.
func WithMessageFunc(fn func(params map[string]any) string) Option {
	return func(c *config) {
		c.messageFunc = fn
	}
}

// resolveMessage picks the rule's failure message: an explicit option wins,
// otherwise the default registry is consulted with the rule's parameters.
func resolveMessage(key string, params map[string]any, opts []Option) string {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	switch {
	case c.messageFunc != nil:
		if params == nil {
			params = map[string]any{}
		}
		return c.messageFunc(params)
	case c.message != "":
		return c.message
	default:
		return messages.Get(key, params)
	}
}

// isEmpty reports the empty-value bypass: nil and "" are valid for every
// rule except Required, so format rules compose with Required without
// double-reporting emptiness.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

// isBlank is Required's stricter notion of emptiness: nil, "", and
// zero-length slices, arrays, and maps. Zero numbers and false are present
// values and pass.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// asString narrows a form value to a string without coercion.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asNumber coerces a form value to a float64: native numeric types pass
// through, strings are parsed. NaN never counts as a number.
func asNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case int:
		n = float64(t)
	case int8:
		n = float64(t)
	case int16:
		n = float64(t)
	case int32:
		n = float64(t)
	case int64:
		n = float64(t)
	case uint:
		n = float64(t)
	case uint8:
		n = float64(t)
	case uint16:
		n = float64(t)
	case uint32:
		n = float64(t)
	case uint64:
		n = float64(t)
	case float32:
		n = float64(t)
	case float64:
		n = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// length measures strings and slices/arrays by their natural length;
// everything else counts as 0.
func length(v any) int {
	if s, ok := v.(string); ok {
		return len(s)
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return 0
}

// equal is strict, type-sensitive equality that never panics on
// uncomparable values.
func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
