// Package sanitize provides small, focused normalizers for raw form input.
//
// Every helper has the shape func(string) string, which makes it directly
// usable as a formkit Normalizer: register it on a field with
// formkit.WithNormalizers and it runs before rule evaluation on every value
// the field receives, including initial values.
//
// The package is completely stateless and depends only on the standard
// library. Helpers are designed to be combined; the higher-order Apply and
// Compose functions build reusable normalization pipelines:
//
//	cleanEmail := sanitize.Compose(
//		sanitize.Trim,
//		sanitize.ToLower,
//	)
//
//	form := formkit.New(rules,
//		formkit.WithNormalizers("email", cleanEmail),
//	)
//
// Normalizers intentionally never reject input; they only reshape it.
// Rejection is the job of the validation rules that run afterwards.
package sanitize
