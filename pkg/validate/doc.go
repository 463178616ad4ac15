// Package validate defines the field validator contract and the machinery
// that composes and schedules validators: sequential composition, conditional
// gating, cross-field projection, debouncing, and stale-result suppression.
//
// # Contract
//
// A validator is a Func: it receives the field's value plus the full value
// set and returns a failure message ("" means valid) or a fault error.
// Validators are plain functions, so rules from any source (the rules
// package, schema adapters, ad-hoc closures) compose freely:
//
//	checkPassword := validate.Compose(
//		rules.Required(),
//		rules.MinLength(8),
//	)
//
//	confirmMatches := validate.CrossField([]string{"password", "confirm"},
//		func(ctx context.Context, fields validate.Values) (string, error) {
//			if fields["password"] != fields["confirm"] {
//				return "Passwords do not match", nil
//			}
//			return "", nil
//		})
//
// # Temporal wrappers
//
// Validators that hit the network are wrapped with Async, which combines
// Debounce (call admission: rapid calls collapse into one invocation per
// quiet window) and RaceGuard (result vetting: only the most recently
// started call's outcome is surfaced; anything staler resolves silently):
//
//	checkUsername := validate.Async(lookupUsername, 300*time.Millisecond)
//
// The composition order is load-bearing: the guard wraps the innermost
// validator so the debounced trailing invocation's result is itself subject
// to staleness checking. Each wrapper instance owns its private timer and
// generation counter; wrapping the same validator twice yields two fully
// independent schedules.
//
// # Concurrency
//
// Calls block until their result is known (or their context is cancelled),
// so the caller decides what runs concurrently. An in-flight validator is
// never aborted by the engine; a losing call's result is discarded, not its
// execution. There is no timeout mechanism; bound slow validators with a
// context deadline.
package validate
