// Package formkit provides a small, synchronous form validation engine:
// given a declarative set of per-field rules it tracks each field's current
// value, whether the user has interacted with it, its computed validity and
// a human-readable error message, and derives form-wide validity and
// dirtiness from the field states.
//
// # Architecture
//
// The package is built around three concepts:
//
//   - Rules – the declarative per-field configuration of which checks apply
//     (required, email, length bounds, pattern, custom predicate) and what
//     message each emits.
//   - Field – the read-only snapshot of one field: value, touched flag,
//     error and validity.
//   - Form – the engine holding the rule map and the live field states,
//     mutated through SetValue, SetTouched, SetError, ValidateAll and
//     Reset.
//
// Checks evaluate in a fixed, short-circuiting order: required first, then
// an empty-optional short-circuit (an optional field with an empty value
// passes without running format or length checks), then email, min/max
// length, pattern and finally the custom predicate. The first failing
// check's message wins.
//
// Validity and error visibility are deliberately decoupled: a field's
// Valid flag always reflects the rule outcome for the current value, while
// its Error message stays hidden until the field is touched, so users can
// type freely without premature feedback.
//
// # Usage
//
//	form := formkit.New(map[string]formkit.Rules{
//		"email": {
//			Required: formkit.Enabled(),
//			Email:    formkit.Enabled(),
//		},
//		"password": {
//			Required:  formkit.Enabled(),
//			MinLength: &formkit.Bound{Value: 8, Message: "Must be at least 8 characters"},
//		},
//	})
//
//	form.SetValue("email", "test@example.com")
//	form.SetTouched("email")
//
//	if form.ValidateAll() {
//		payload := form.Values()
//		// submit payload
//	}
//
// Errors from outside the rule set, such as a server rejecting a value
// after submission, are injected with SetError and cleared either
// explicitly or by the next SetValue on the field.
//
// # Concurrency
//
// A Form is owned by the single caller that constructed it, typically one
// UI view, and is not safe for concurrent use. Every operation completes
// synchronously before returning; there is no background work and no I/O.
//
// # Related Packages
//
// The schema subpackage loads rule maps from YAML or JSON documents, the
// sanitize subpackage provides input normalizers for WithNormalizers, and
// the i18n subpackage builds Translators for localized default messages.
package formkit
