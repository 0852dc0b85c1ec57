package sanitize

import "strings"

// NormalizeEmail lowercases and trims an email address. Local parts are
// case-sensitive per RFC 5321 but treated as case-insensitive here, as
// every mainstream provider does.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone keeps digits and a single leading plus sign, dropping
// spaces, dashes, dots and parentheses.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	digits := KeepDigits(phone)
	if plus && digits != "" {
		return "+" + digits
	}
	return digits
}

// NormalizeName trims, collapses inner whitespace and strips control
// characters from a person or display name.
func NormalizeName(name string) string {
	return CollapseWhitespace(StripControl(name))
}
