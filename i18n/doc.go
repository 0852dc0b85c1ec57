// Package i18n provides localized message catalogs for formkit's default
// validation messages.
//
// A Catalog maps language tags to message templates keyed by translation
// key ("validation.required", "validation.email", ...). Templates may embed
// {{placeholder}} tokens that are filled from the values the engine passes
// along with each key (field name, configured bounds, ...).
//
// Language negotiation uses golang.org/x/text/language: the caller asks for
// a Translator with whatever tag the user agent reported ("de-AT",
// "en-US;q=0.9") and the catalog picks the closest language it actually
// carries, falling back to the configured default.
//
// # Usage
//
//	catalog, err := i18n.NewFromYAML(catalogYAML)
//	if err != nil {
//		return err
//	}
//
//	form := formkit.New(rules,
//		formkit.WithTranslator(catalog.Translator("de-AT")),
//	)
//
// A Translator returns "" for keys its language has no template for, which
// makes the engine fall back to the built-in English default, so partial
// catalogs degrade gracefully.
package i18n
