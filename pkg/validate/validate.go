package validate

import "context"

// Values is the full set of form values keyed by field name. The engine only
// reads it; mutation is the owning form-state container's business.
type Values map[string]any

// Func validates a single field's value given the full value set.
//
// An empty message means the value is valid. A non-empty message is the
// human-readable validation failure shown to the field. A non-nil error is a
// validator fault (the implementation itself broke) and is propagated to the
// caller unchanged; it is never shown as a field message.
//
// Implementations may block on I/O and must honor ctx.
type Func func(ctx context.Context, value any, values Values) (string, error)
