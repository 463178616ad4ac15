package formval

import (
	"log/slog"
	"maps"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// Option is a function that configures a Form instance.
type Option func(*Form)

// WithLogger provides a logger for validator faults. If not specified, a
// discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithValues seeds the form with an initial value snapshot. Seeded fields
// are not marked touched.
func WithValues(values validate.Values) Option {
	return func(f *Form) {
		if values != nil {
			f.values = maps.Clone(values)
		}
	}
}
