package formval

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"sync"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// Schema resolves a field name to its validator. A nil validator means the
// field is unknown to the schema and always validates clean.
type Schema interface {
	Field(name string) validate.Func
}

// Fields is a static schema: an explicit map from field name to validator.
type Fields map[string]validate.Func

// Field implements Schema.
func (f Fields) Field(name string) validate.Func { return f[name] }

// FieldNames lists the fields the schema knows about, so a submit pass can
// cover fields that never received a value.
func (f Fields) FieldNames() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	return names
}

type fieldState struct {
	touched    bool
	errMsg     string
	validating int    // in-flight validations
	seq        uint64 // latest started validation for this field
}

// Form coordinates per-field validation state: values, touched flags, error
// messages, and in-flight markers. It owns the validation decision process;
// the surrounding UI layer owns rendering and event wiring and is expected
// to poll state between events.
//
// Methods are safe for concurrent use. ValidateField blocks for as long as
// the field's validator does (debounced validators wait out their window),
// so interactive callers run it on their own goroutine and poll Validating.
type Form struct {
	mu     sync.Mutex
	schema Schema
	values validate.Values
	fields map[string]*fieldState
	logger *slog.Logger
}

// New creates a form driver over the given schema.
func New(schema Schema, opts ...Option) *Form {
	f := &Form{
		schema: schema,
		values: validate.Values{},
		fields: make(map[string]*fieldState),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// state returns the field's state record, creating it on first touch.
// Callers must hold f.mu.
func (f *Form) state(name string) *fieldState {
	st, ok := f.fields[name]
	if !ok {
		st = &fieldState{}
		f.fields[name] = st
	}
	return st
}

// SetValue stores a field's value and marks it touched. It does not
// validate; call ValidateField when the consuming layer decides the moment
// is right (change, blur, or submit).
func (f *Form) SetValue(name string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	f.state(name).touched = true
}

// Value returns the field's current value.
func (f *Form) Value(name string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Values returns a copy of the full value set.
func (f *Form) Values() validate.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// ValidateField runs the field's validator against a snapshot of the current
// values and records the outcome. While the call is in flight the field
// reports Validating.
//
// If a newer ValidateField for the same field starts before this one
// settles, this one's outcome is discarded: it neither overwrites the
// recorded error nor reaches the caller, which receives ("", nil), the
// same silence the race guard produces. Validator faults are returned
// unchanged and leave the recorded error untouched.
func (f *Form) ValidateField(ctx context.Context, name string) (string, error) {
	f.mu.Lock()
	st := f.state(name)
	st.touched = true

	fn := f.schema.Field(name)
	if fn == nil {
		st.errMsg = ""
		f.mu.Unlock()
		return "", nil
	}

	st.seq++
	id := st.seq
	st.validating++
	value := f.values[name]
	snapshot := maps.Clone(f.values)
	f.mu.Unlock()

	msg, err := fn(ctx, value, snapshot)

	f.mu.Lock()
	st.validating--
	stale := st.seq != id
	if !stale && err == nil {
		st.errMsg = msg
	}
	f.mu.Unlock()

	if err != nil {
		f.logger.ErrorContext(ctx, "field validator failed", "field", name, "error", err)
		return "", err
	}
	if stale {
		return "", nil
	}
	return msg, nil
}

// Validate is the submit path: it touches and validates every field the
// schema or the value set knows about, sequentially, and aggregates the
// failures. The first validator fault aborts the pass.
func (f *Form) Validate(ctx context.Context) (ValidationError, error) {
	errs := NewValidationError()
	for _, name := range f.fieldNames() {
		msg, err := f.ValidateField(ctx, name)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			errs.Add(name, msg)
		}
	}
	return errs, nil
}

// fieldNames returns the union of value-set keys and, when the schema can
// enumerate (static Fields schemas can, lazy adapters cannot), schema keys.
func (f *Form) fieldNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[string]bool, len(f.values))
	names := make([]string, 0, len(f.values))
	for name := range f.values {
		seen[name] = true
		names = append(names, name)
	}
	if enum, ok := f.schema.(interface{ FieldNames() []string }); ok {
		for _, name := range enum.FieldNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// FieldError returns the field's recorded validation message, if any.
func (f *Form) FieldError(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st, ok := f.fields[name]; ok {
		return st.errMsg
	}
	return ""
}

// Touched reports whether the field has received a value or been validated.
func (f *Form) Touched(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st, ok := f.fields[name]; ok {
		return st.touched
	}
	return false
}

// Validating reports whether the field has a validation in flight.
func (f *Form) Validating(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st, ok := f.fields[name]; ok {
		return st.validating > 0
	}
	return false
}

// Valid reports whether no field currently records an error. It says
// nothing about fields that were never validated.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, st := range f.fields {
		if st.errMsg != "" {
			return false
		}
	}
	return true
}

// Reset clears all values, errors, and touched/validating bookkeeping.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = validate.Values{}
	f.fields = make(map[string]*fieldState)
}
