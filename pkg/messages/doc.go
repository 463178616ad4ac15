// Package messages provides the process-wide table of validation error
// messages used by rule validators, with support for overrides and reset.
//
// Entries are either plain strings with %{name} placeholders or Template
// functions invoked with rule-specific parameters:
//
//	messages.Get("min_length", map[string]any{"min": 5})
//	// "Must be at least 5 characters"
//
// Applications localize or rebrand messages by merging overrides into the
// working table:
//
//	messages.Set(map[string]any{
//		"required": "Dieses Feld ist erforderlich",
//		"min_length": messages.Template(func(p map[string]any) string {
//			return fmt.Sprintf("Mindestens %v Zeichen", p["min"])
//		}),
//	})
//
// Reset restores the built-in defaults exactly, no matter how many overrides
// were applied. Rule validators resolve their message at construction time,
// so overrides only affect validators built afterwards; callers querying
// Get directly always see the live table.
//
// The package-level functions operate on the shared Default registry. Tests
// that need isolation can work against their own instance via NewRegistry.
package messages
