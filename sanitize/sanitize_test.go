package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/sanitize"
)

func TestApply(t *testing.T) {
	t.Run("runs transforms in order", func(t *testing.T) {
		result := sanitize.Apply("  Hello World  ", sanitize.Trim, sanitize.ToLower)
		assert.Equal(t, "hello world", result)
	})

	t.Run("no transforms returns the input", func(t *testing.T) {
		assert.Equal(t, "  x  ", sanitize.Apply("  x  "))
	})
}

func TestCompose(t *testing.T) {
	clean := sanitize.Compose(sanitize.Trim, sanitize.CollapseWhitespace, sanitize.ToLower)

	assert.Equal(t, "mixed case input", clean("  Mixed CASE   Input\n"))
	assert.Equal(t, "", clean("   "))
}

func TestTrimAndCase(t *testing.T) {
	assert.Equal(t, "abc", sanitize.Trim("  abc  "))
	assert.Equal(t, "abc", sanitize.ToLower("ABC"))
	assert.Equal(t, "ABC", sanitize.ToUpper("abc"))
	assert.Equal(t, "john@example.com", sanitize.TrimToLower("  John@Example.COM "))
}

func TestCollapseWhitespace(t *testing.T) {
	t.Run("collapses inner runs", func(t *testing.T) {
		assert.Equal(t, "a b c", sanitize.CollapseWhitespace("a   b \t c"))
	})

	t.Run("trims the ends", func(t *testing.T) {
		assert.Equal(t, "a", sanitize.CollapseWhitespace("   a   "))
	})

	t.Run("whitespace-only becomes empty", func(t *testing.T) {
		assert.Equal(t, "", sanitize.CollapseWhitespace(" \n\t "))
	})
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "line one line two", sanitize.SingleLine("line one\r\nline two"))
	assert.Equal(t, "a b", sanitize.SingleLine("a\tb"))
}

func TestStripControl(t *testing.T) {
	assert.Equal(t, "abc", sanitize.StripControl("a\x00b\x1bc"))
	assert.Equal(t, "ünïcode", sanitize.StripControl("ünïcode"))
}

func TestKeepDigits(t *testing.T) {
	assert.Equal(t, "123456", sanitize.KeepDigits("12-34 56"))
	assert.Equal(t, "", sanitize.KeepDigits("abc"))
}

func TestTruncate(t *testing.T) {
	t.Run("limits byte length", func(t *testing.T) {
		assert.Equal(t, "abc", sanitize.Truncate("abcdef", 3))
	})

	t.Run("never splits a rune", func(t *testing.T) {
		// "é" is two bytes; cutting at 1 would leave an invalid prefix.
		assert.Equal(t, "", sanitize.Truncate("é", 1))
		assert.Equal(t, "é", sanitize.Truncate("é", 2))
	})

	t.Run("non-positive max returns empty", func(t *testing.T) {
		assert.Equal(t, "", sanitize.Truncate("abc", 0))
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", sanitize.NormalizeEmail("  User@Example.COM  "))
}

func TestNormalizePhone(t *testing.T) {
	t.Run("keeps leading plus", func(t *testing.T) {
		assert.Equal(t, "+15551234567", sanitize.NormalizePhone("+1 (555) 123-4567"))
	})

	t.Run("drops formatting without plus", func(t *testing.T) {
		assert.Equal(t, "5551234567", sanitize.NormalizePhone("555.123.4567"))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", sanitize.NormalizePhone("  +  "))
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Jane Doe", sanitize.NormalizeName("  Jane \x00  Doe \n"))
}
