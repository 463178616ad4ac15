// Package formval is a form validation and state-coordination engine: it
// tracks field values and their touched/error/validating state, schedules
// synchronous and asynchronous validators, and guarantees that only the most
// recent asynchronous result for a field is ever observed.
//
// The engine owns the validation decision process and its timing and race
// guarantees. Everything around it (widgets, layout, styling, transport)
// belongs to the consuming layer, which talks to the engine through a narrow
// surface: hand over a field name, its value, and the full value set;
// receive a failure message or silence.
//
// Basic Usage:
//
//	form := formval.New(formval.Fields{
//		"email": validate.Compose(
//			rules.Required(),
//			rules.Email(),
//		),
//		"username": validate.Compose(
//			rules.Required(),
//			rules.MinLength(3),
//			validate.Async(checkUsernameFree, 300*time.Millisecond),
//		),
//		"confirm": rules.Matches("password"),
//	})
//
//	form.SetValue("email", "user@example.com")
//	if msg, err := form.ValidateField(ctx, "email"); err != nil {
//		// validator fault: the implementation broke, not the value
//	} else if msg != "" {
//		// show msg next to the field
//	}
//
//	// Submit path: validate everything, aggregate failures.
//	errs, err := form.Validate(ctx)
//	if err == nil && !errs.IsEmpty() {
//		// render errs.Get("email"), errs.Get("username"), ...
//	}
//
// Schemas can also come from an external schema library adapted through the
// schema package, or mix both: any value satisfying the Schema interface
// works.
//
// Validation of a field blocks for as long as its validator runs. Debounced
// validators wait out their quiet window, so interactive callers run
// ValidateField on a goroutine and poll Validating(field) for a pending
// indicator. A slower older validation never overwrites a newer outcome.
package formval
