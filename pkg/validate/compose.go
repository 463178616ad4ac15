package validate

import "context"

// Compose runs validators strictly in order and short-circuits on the first
// failure message. A validator fault aborts the chain immediately and is
// propagated unchanged. Nil entries are skipped so optional rules can be
// spliced in conditionally.
func Compose(fns ...Func) Func {
	return func(ctx context.Context, value any, values Values) (string, error) {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			msg, err := fn(ctx, value, values)
			if err != nil {
				return "", err
			}
			if msg != "" {
				return msg, nil
			}
		}
		return "", nil
	}
}

// When gates a validator behind a predicate over the full value set. When the
// predicate is false the validator is not invoked at all, so async rules
// guarded this way make no calls.
func When(pred func(values Values) bool, fn Func) Func {
	return func(ctx context.Context, value any, values Values) (string, error) {
		if pred == nil || fn == nil || !pred(values) {
			return "", nil
		}
		return fn(ctx, value, values)
	}
}

// CrossField projects only the listed field names out of the full value set
// and hands the projection to check. The field under validation is not
// injected implicitly; list its name if it must participate. Keys absent from
// the value set stay absent from the projection.
func CrossField(fields []string, check func(ctx context.Context, fields Values) (string, error)) Func {
	return func(ctx context.Context, _ any, values Values) (string, error) {
		projected := make(Values, len(fields))
		for _, name := range fields {
			if v, ok := values[name]; ok {
				projected[name] = v
			}
		}
		return check(ctx, projected)
	}
}
