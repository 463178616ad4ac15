package schema

// Issue is a single problem reported by an external schema library,
// addressed by the path of the offending value.
type Issue struct {
	Path    []string
	Message string
}

// Result is the outcome of validating an input against an external schema.
type Result struct {
	Success bool
	Output  any
	Issues  []Issue
}

// External is the integration contract for third-party schema libraries.
// Wrap the library once into this interface instead of probing its API per
// call. Parse must validate the given input and report every issue with its
// path. It is allowed to panic; the adapter converts panics into plain
// validation failures.
type External interface {
	Parse(input any) Result
}

// ParseFunc adapts a bare function to the External interface.
type ParseFunc func(input any) Result

func (f ParseFunc) Parse(input any) Result { return f(input) }
