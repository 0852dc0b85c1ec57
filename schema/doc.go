// Package schema loads formkit rule descriptors from declarative YAML or
// JSON documents, so form definitions can live next to the screens they
// belong to instead of in code.
//
// A document declares the field set, the checks per field and optional
// initial values:
//
//	fields:
//	  email:
//	    required: true
//	    email: "Please use your work email"
//	  password:
//	    required: true
//	    minLength: {value: 8, message: "Must be at least 8 characters"}
//	  username:
//	    pattern: {value: "^[a-z0-9_]+$", message: "Lowercase letters, digits and _ only"}
//	    custom: no-reserved-names
//	  bio: {}
//	initial:
//	  username: guest
//
// Boolean-style rules accept either a bare true (default message) or a
// custom message string; structured rules use {value, message} objects. The
// mixed shapes are resolved at parse time by custom unmarshalers, so the
// resulting formkit.Rules are fully typed.
//
// Custom predicates cannot be expressed in a document; they are referenced
// by name and resolved against functions registered with WithCustomRule:
//
//	descriptor, err := schema.ParseYAML(content,
//		schema.WithCustomRule("no-reserved-names", rejectReserved),
//	)
//	if err != nil {
//		return err
//	}
//	form := descriptor.Form()
package schema
