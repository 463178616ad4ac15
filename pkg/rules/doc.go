// Package rules provides the built-in library of stateless field validators:
// presence, length, numeric bounds, formats (email, URL, phone, postal code,
// card numbers, UUIDs), pattern matching, set membership, and cross-field
// equality.
//
// Every constructor returns a validate.Func, so rules slot directly into
// validate.Compose and friends:
//
//	password := validate.Compose(
//		rules.Required(),
//		rules.MinLength(8),
//	)
//	confirm := validate.Compose(
//		rules.Required(),
//		rules.Matches("password"),
//	)
//
// # Empty-value bypass
//
// Every rule except Required treats nil and "" as valid. Format rules
// therefore never double-report emptiness; pair them with Required when the
// field is mandatory.
//
// # Messages
//
// Failure messages come from the messages package and are resolved once, at
// rule construction. Override per rule with WithMessage or WithMessageFunc:
//
//	rules.MinLength(8, rules.WithMessage("Pick a longer password"))
//	rules.Min(18, rules.WithMessageFunc(func(p map[string]any) string {
//		return fmt.Sprintf("You must be %v or older", p["min"])
//	}))
//
// Rules never return a fault for malformed input; a value of the wrong type
// is simply invalid.
package rules
