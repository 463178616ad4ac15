package formval_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval"
	"github.com/dmitrymomot/formval/pkg/schema"
	"github.com/dmitrymomot/formval/pkg/validate"
)

// profileSchema mimics a wrapped third-party object schema for a profile
// form: email must look like an email, bio is capped at 20 characters.
func profileSchema() schema.External {
	return schema.ParseFunc(func(input any) schema.Result {
		values, ok := input.(map[string]any)
		if !ok {
			return schema.Result{Issues: []schema.Issue{{Message: "expected an object"}}}
		}

		var issues []schema.Issue
		if email, ok := values["email"].(string); ok && !strings.Contains(email, "@") {
			issues = append(issues, schema.Issue{Path: []string{"email"}, Message: "Invalid email format"})
		}
		if bio, ok := values["bio"].(string); ok && len(bio) > 20 {
			issues = append(issues, schema.Issue{Path: []string{"bio"}, Message: "Bio is too long"})
		}
		if len(issues) > 0 {
			return schema.Result{Issues: issues}
		}
		return schema.Result{Success: true, Output: values}
	})
}

// The adapter satisfies the driver's Schema interface directly, so a form
// can be driven entirely by an external schema.
func TestForm_WithSchemaAdapter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	form := formval.New(schema.NewAdapter(profileSchema()))

	form.SetValue("email", "not-an-email")
	form.SetValue("bio", "short")

	msg, err := form.ValidateField(ctx, "email")
	require.NoError(t, err)
	assert.Equal(t, "Invalid email format", msg)

	msg, err = form.ValidateField(ctx, "bio")
	require.NoError(t, err)
	assert.Empty(t, msg)

	// Fields the schema never mentions validate clean.
	form.SetValue("nickname", "zed")
	msg, err = form.ValidateField(ctx, "nickname")
	require.NoError(t, err)
	assert.Empty(t, msg)

	// Fixing the value clears the recorded error on the next pass.
	form.SetValue("email", "zed@example.com")
	msg, err = form.ValidateField(ctx, "email")
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.True(t, form.Valid())

	// The submit pass aggregates adapter-reported failures per field.
	form.SetValue("bio", strings.Repeat("x", 30))
	errs, err := form.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, validate.Values{
		"email":    "zed@example.com",
		"bio":      strings.Repeat("x", 30),
		"nickname": "zed",
	}, form.Values())
	assert.Equal(t, "Bio is too long", errs.Get("bio"))
	assert.False(t, errs.Has("email"))
}
