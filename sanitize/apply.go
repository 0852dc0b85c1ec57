package sanitize

// Apply runs the transforms over the value in order and returns the result.
func Apply(value string, transforms ...func(string) string) string {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a single reusable transform out of several. Preferred over
// repeated Apply calls when the same chain is registered on multiple fields.
func Compose(transforms ...func(string) string) func(string) string {
	return func(value string) string {
		return Apply(value, transforms...)
	}
}
