package messages

import (
	"fmt"
	"maps"
	"regexp"
	"sync"
)

// Template computes a message from rule parameters at lookup time.
// Registry entries may be either a plain template string or a Template.
type Template func(params map[string]any) string

// defaultMessages is the frozen default table. It is never mutated; Reset
// rebuilds the working table from it so defaults survive any number of
// overrides.
var defaultMessages = map[string]any{
	"required":         "This field is required",
	"email":            "Must be a valid email address",
	"url":              "Must be a valid URL",
	"phone":            "Must be a valid phone number",
	"min_length":       "Must be at least %{min} characters",
	"max_length":       "Must be at most %{max} characters",
	"min":              "Must be at least %{min}",
	"max":              "Must be at most %{max}",
	"pattern":          "Invalid format",
	"matches":          "Must match the %{field} field",
	"one_of":           "Must be one of the allowed values",
	"credit_card":      "Must be a valid card number",
	"postal_code":      "Must be a valid postal code",
	"alpha":            "Must contain only letters",
	"alphanumeric":     "Must contain only letters and numbers",
	"numeric":          "Must be a number",
	"integer":          "Must be a whole number",
	"uuid":             "Must be a valid UUID",
	"validation_error": "Validation error",
}

// Registry holds the working message table. A process-wide Default instance
// backs the package-level functions; tests that run in parallel can create
// isolated instances with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry returns a registry initialized with the default messages.
func NewRegistry() *Registry {
	return &Registry{entries: maps.Clone(defaultMessages)}
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Get resolves the message for key. Template functions are invoked with
// params; plain strings get %{name} placeholder substitution. A missing key
// yields a diagnostic string naming the key rather than an error.
func (r *Registry) Get(key string, params map[string]any) string {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return fmt.Sprintf("missing validation message: %s", key)
	}
	if params == nil {
		params = map[string]any{}
	}

	switch m := entry.(type) {
	case Template:
		return m(params)
	case func(map[string]any) string:
		return m(params)
	case string:
		return namedSprintf(m, params)
	default:
		return fmt.Sprintf("missing validation message: %s", key)
	}
}

// Set merges overrides into the working table. New keys are added, existing
// keys overwritten; unrelated keys and the frozen defaults are untouched.
func (r *Registry) Set(overrides map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, msg := range overrides {
		r.entries[key] = msg
	}
}

// Reset restores the working table to the frozen defaults.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = maps.Clone(defaultMessages)
}

// Has reports whether the working table contains key.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// namedSprintf substitutes %{name} placeholders from params. Placeholders
// without a matching parameter are kept verbatim.
func namedSprintf(tmpl string, params map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Default is the process-wide registry used by the package-level functions
// and by rule constructors that are not given an explicit message.
var Default = NewRegistry()

// Get resolves a message from the default registry.
func Get(key string, params map[string]any) string {
	return Default.Get(key, params)
}

// Set merges overrides into the default registry.
func Set(overrides map[string]any) {
	Default.Set(overrides)
}

// Reset restores the default registry to its initial state.
func Reset() {
	Default.Reset()
}
