// Package schema adapts externally defined object schemas into the engine's
// per-field validator contract.
//
// A third-party schema library is wrapped once into the External interface:
// Parse takes the candidate input and reports success or a list of issues,
// each addressed by path. The Adapter then exposes per-field validators on
// demand:
//
//	adapter := schema.NewAdapter(userSchema)
//	emailValidator := adapter.Field("email")
//
// Each field validator re-validates the entire current value set and
// surfaces the issue whose path starts with its field name; fields the
// schema never mentions always validate clean. Validators are built lazily
// and memoized because field names cannot be enumerated from an opaque
// schema.
//
// SingleField covers the complementary case of validating one bare value
// against a field-level schema without a surrounding object.
//
// Panics thrown by the wrapped library are contained and converted into
// ordinary failure messages; they never escape to the caller.
package schema
