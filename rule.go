package formkit

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// Default messages for rule kinds that ship one. Length, pattern and custom
// rules are expected to carry caller-authored messages.
const (
	requiredMessage = "This field is required"
	emailMessage    = "Please enter a valid email address"
)

// Translation keys emitted alongside default messages. Caller-authored
// messages are never translated; they are already in the caller's language.
const (
	keyRequired  = "validation.required"
	keyEmail     = "validation.email"
	keyMinLength = "validation.min_length"
	keyMaxLength = "validation.max_length"
	keyPattern   = "validation.pattern"
)

// Flag configures a boolean-style rule (required, email) that is either
// absent, enabled with the default message, or enabled with a custom one.
// The zero value means the rule is absent.
type Flag struct {
	enabled bool
	message string
}

// Enabled turns the rule on with its default message.
func Enabled() Flag {
	return Flag{enabled: true}
}

// WithMessage turns the rule on with a custom failure message.
func WithMessage(message string) Flag {
	return Flag{enabled: true, message: message}
}

// Enabled reports whether the rule is configured for the field.
func (f Flag) Enabled() bool {
	return f.enabled
}

// Message returns the configured custom message, or "" when the rule uses
// its default.
func (f Flag) Message() string {
	return f.message
}

// Bound configures a length rule. A nil *Bound in Rules means the rule is
// absent.
type Bound struct {
	Value   int
	Message string
}

// PatternRule configures a regular-expression rule.
type PatternRule struct {
	Regexp  *regexp.Regexp
	Message string
}

// Rules declares the checks that apply to one field. All checks are
// optional; the zero value accepts every input.
type Rules struct {
	Required  Flag
	Email     Flag
	MinLength *Bound
	MaxLength *Bound
	Pattern   *PatternRule

	// Custom is invoked last with the current value and returns a failure
	// message, or "" to pass. It must be a pure function of the value.
	Custom func(value string) string
}

// violation describes the first failed check for a value, together with the
// translation metadata the form needs to localize default messages.
type violation struct {
	Message string
	Key     string
	Values  map[string]any
}

// evaluate runs the checks in fixed order and returns the first failure, or
// nil when the value passes. The order is: required, empty-optional
// short-circuit, email, min length, max length, pattern, custom.
func (r Rules) evaluate(field, value string) *violation {
	if r.Required.enabled && strings.TrimSpace(value) == "" {
		if r.Required.message != "" {
			return &violation{Message: r.Required.message}
		}
		return &violation{
			Message: requiredMessage,
			Key:     keyRequired,
			Values:  map[string]any{"field": field},
		}
	}

	// Optional fields accept empty input without running the remaining
	// checks, so format and length rules only constrain provided values.
	if !r.Required.enabled && value == "" {
		return nil
	}

	if r.Email.enabled && !emailShaped(value) {
		if r.Email.message != "" {
			return &violation{Message: r.Email.message}
		}
		return &violation{
			Message: emailMessage,
			Key:     keyEmail,
			Values:  map[string]any{"field": field},
		}
	}

	if r.MinLength != nil && len(value) < r.MinLength.Value {
		if r.MinLength.Message != "" {
			return &violation{Message: r.MinLength.Message}
		}
		return &violation{
			Message: fmt.Sprintf("Must be at least %d characters long", r.MinLength.Value),
			Key:     keyMinLength,
			Values:  map[string]any{"field": field, "min": r.MinLength.Value},
		}
	}

	if r.MaxLength != nil && len(value) > r.MaxLength.Value {
		if r.MaxLength.Message != "" {
			return &violation{Message: r.MaxLength.Message}
		}
		return &violation{
			Message: fmt.Sprintf("Must be at most %d characters long", r.MaxLength.Value),
			Key:     keyMaxLength,
			Values:  map[string]any{"field": field, "max": r.MaxLength.Value},
		}
	}

	if r.Pattern != nil && r.Pattern.Regexp != nil && !r.Pattern.Regexp.MatchString(value) {
		if r.Pattern.Message != "" {
			return &violation{Message: r.Pattern.Message}
		}
		return &violation{
			Message: "Invalid format",
			Key:     keyPattern,
			Values:  map[string]any{"field": field, "pattern": r.Pattern.Regexp.String()},
		}
	}

	if r.Custom != nil {
		if msg := r.Custom(value); msg != "" {
			return &violation{Message: msg}
		}
	}

	return nil
}

// Validate runs the rules against a value outside of any form and returns
// the first failure message in the default language, or "" when the value
// passes.
func (r Rules) Validate(field, value string) string {
	if v := r.evaluate(field, value); v != nil {
		return v.Message
	}
	return ""
}

// emailShaped checks that a value looks like a deliverable user@domain.tld
// address for typical web use. RFC 5322 alone admits addresses without a
// dotted domain, so the parser result is tightened afterwards.
func emailShaped(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
