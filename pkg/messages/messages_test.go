package messages_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/messages"
)

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns default message", func(t *testing.T) {
		r := messages.NewRegistry()
		assert.Equal(t, "This field is required", r.Get("required", nil))
	})

	t.Run("substitutes named placeholders", func(t *testing.T) {
		r := messages.NewRegistry()
		assert.Equal(t, "Must be at least 5 characters", r.Get("min_length", map[string]any{"min": 5}))
		assert.Equal(t, "Must be at most 10", r.Get("max", map[string]any{"max": 10}))
	})

	t.Run("keeps unknown placeholders verbatim", func(t *testing.T) {
		r := messages.NewRegistry()
		assert.Equal(t, "Must be at least %{min} characters", r.Get("min_length", nil))
	})

	t.Run("invokes template functions with params", func(t *testing.T) {
		r := messages.NewRegistry()
		r.Set(map[string]any{
			"min_length": messages.Template(func(p map[string]any) string {
				return fmt.Sprintf("too short, need %v", p["min"])
			}),
		})
		assert.Equal(t, "too short, need 3", r.Get("min_length", map[string]any{"min": 3}))
	})

	t.Run("invokes bare template funcs", func(t *testing.T) {
		r := messages.NewRegistry()
		r.Set(map[string]any{"custom": func(p map[string]any) string { return "custom message" }})
		assert.Equal(t, "custom message", r.Get("custom", nil))
	})

	t.Run("template func receives empty params when nil given", func(t *testing.T) {
		r := messages.NewRegistry()
		r.Set(map[string]any{
			"probe": messages.Template(func(p map[string]any) string {
				require.NotNil(t, p)
				return "ok"
			}),
		})
		assert.Equal(t, "ok", r.Get("probe", nil))
	})

	t.Run("missing key returns diagnostic, never panics", func(t *testing.T) {
		r := messages.NewRegistry()
		assert.Equal(t, "missing validation message: nope", r.Get("nope", nil))
	})
}

func TestRegistry_SetReset(t *testing.T) {
	t.Parallel()

	t.Run("merge keeps unrelated keys", func(t *testing.T) {
		r := messages.NewRegistry()
		r.Set(map[string]any{"required": "cannot be blank"})

		assert.Equal(t, "cannot be blank", r.Get("required", nil))
		assert.Equal(t, "Must be a valid email address", r.Get("email", nil))
	})

	t.Run("merge adds new keys", func(t *testing.T) {
		r := messages.NewRegistry()
		r.Set(map[string]any{"username_taken": "This username is taken"})

		assert.True(t, r.Has("username_taken"))
		assert.Equal(t, "This username is taken", r.Get("username_taken", nil))
	})

	t.Run("reset restores defaults after any overrides", func(t *testing.T) {
		r := messages.NewRegistry()
		r.Set(map[string]any{"required": "first override"})
		r.Set(map[string]any{"required": "second override", "email": "bad email"})
		r.Set(map[string]any{"extra": "added"})

		r.Reset()

		assert.Equal(t, "This field is required", r.Get("required", nil))
		assert.Equal(t, "Must be a valid email address", r.Get("email", nil))
		assert.False(t, r.Has("extra"))
	})

	t.Run("overriding one registry does not leak into another", func(t *testing.T) {
		a := messages.NewRegistry()
		b := messages.NewRegistry()

		a.Set(map[string]any{"required": "changed"})

		assert.Equal(t, "changed", a.Get("required", nil))
		assert.Equal(t, "This field is required", b.Get("required", nil))
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(messages.Reset)

	messages.Set(map[string]any{"required": "override"})
	assert.Equal(t, "override", messages.Get("required", nil))

	messages.Reset()
	assert.Equal(t, "This field is required", messages.Get("required", nil))
}
