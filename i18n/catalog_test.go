package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/i18n"
)

var catalogYAML = []byte(`
en:
  validation.required: "The {{field}} field is required"
  validation.email: "Enter a valid email for {{field}}"
  validation.min_length: "The {{field}} must be at least {{min}} characters"
de:
  validation.required: "Das Feld {{field}} ist erforderlich"
`)

func TestNewFromYAML(t *testing.T) {
	t.Run("parses a multi-language catalog", func(t *testing.T) {
		catalog, err := i18n.NewFromYAML(catalogYAML)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "de"}, catalog.Languages())
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := i18n.NewFromYAML([]byte("en: [not a map"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects an empty document", func(t *testing.T) {
		_, err := i18n.NewFromYAML([]byte(""))
		assert.ErrorIs(t, err, i18n.ErrNoMessages)
	})
}

func TestNew(t *testing.T) {
	t.Run("rejects invalid language tags", func(t *testing.T) {
		_, err := i18n.New(map[string]map[string]string{
			"not a tag!": {"validation.required": "x"},
		})
		assert.ErrorIs(t, err, i18n.ErrInvalidLanguageTag)
	})

	t.Run("requires messages for the default language", func(t *testing.T) {
		_, err := i18n.New(map[string]map[string]string{
			"de": {"validation.required": "x"},
		})
		assert.ErrorIs(t, err, i18n.ErrNoMessages)
	})

	t.Run("honors a custom default language", func(t *testing.T) {
		catalog, err := i18n.New(map[string]map[string]string{
			"de": {"validation.required": "Erforderlich"},
		}, i18n.WithDefaultLanguage("de"))
		require.NoError(t, err)
		assert.Equal(t, []string{"de"}, catalog.Languages())
	})
}

func TestTranslator(t *testing.T) {
	catalog, err := i18n.NewFromYAML(catalogYAML)
	require.NoError(t, err)

	t.Run("interpolates placeholders", func(t *testing.T) {
		translate := catalog.Translator("en")
		msg := translate("validation.min_length", map[string]any{"field": "password", "min": 8})
		assert.Equal(t, "The password must be at least 8 characters", msg)
	})

	t.Run("matches regional variants to the base language", func(t *testing.T) {
		translate := catalog.Translator("de-AT")
		msg := translate("validation.required", map[string]any{"field": "name"})
		assert.Equal(t, "Das Feld name ist erforderlich", msg)
	})

	t.Run("falls back to the default language for unknown tags", func(t *testing.T) {
		translate := catalog.Translator("fr")
		msg := translate("validation.required", map[string]any{"field": "name"})
		assert.Equal(t, "The name field is required", msg)
	})

	t.Run("returns empty for missing keys", func(t *testing.T) {
		translate := catalog.Translator("de")
		assert.Empty(t, translate("validation.email", map[string]any{"field": "email"}))
	})
}

func TestCatalogWithForm(t *testing.T) {
	catalog, err := i18n.NewFromYAML(catalogYAML)
	require.NoError(t, err)

	t.Run("localizes default messages", func(t *testing.T) {
		form := formkit.New(map[string]formkit.Rules{
			"name": {Required: formkit.Enabled()},
		}, formkit.WithTranslator(catalog.Translator("de")))

		form.SetTouched("name")

		field, _ := form.Field("name")
		assert.Equal(t, "Das Feld name ist erforderlich", field.Error)
	})

	t.Run("missing key falls back to the built-in default", func(t *testing.T) {
		form := formkit.New(map[string]formkit.Rules{
			"email": {Email: formkit.Enabled()},
		}, formkit.WithTranslator(catalog.Translator("de")))

		form.SetValue("email", "bad")
		form.SetTouched("email")

		field, _ := form.Field("email")
		assert.Equal(t, "Please enter a valid email address", field.Error)
	})
}
