package i18n

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit"
)

// DefaultLanguage is used when no explicit default is configured and when
// negotiation cannot find anything better.
const DefaultLanguage = "en"

// Catalog holds per-language message templates keyed by translation key.
// It is immutable after construction and safe for concurrent readers.
type Catalog struct {
	messages map[string]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	logger   *slog.Logger
}

// Option configures a Catalog at construction time.
type Option func(*config)

type config struct {
	defaultLang string
	logger      *slog.Logger
}

// WithDefaultLanguage sets the language used when negotiation finds no
// acceptable match. It must be one of the catalog's languages.
func WithDefaultLanguage(lang string) Option {
	return func(c *config) {
		c.defaultLang = lang
	}
}

// WithLogger sets a logger for diagnostics such as missing message keys.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New builds a catalog from a language→key→template map. Language keys must
// be valid BCP 47 tags. The default language is listed first for the
// matcher, so it wins whenever negotiation is inconclusive.
func New(messages map[string]map[string]string, opts ...Option) (*Catalog, error) {
	cfg := config{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	defaultTag, err := language.Parse(cfg.defaultLang)
	if err != nil {
		return nil, errors.Join(ErrInvalidLanguageTag, fmt.Errorf("default language %q: %w", cfg.defaultLang, err))
	}

	c := &Catalog{
		messages: make(map[string]map[string]string, len(messages)),
		logger:   cfg.logger,
	}

	for lang, msgs := range messages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguageTag, fmt.Errorf("language %q: %w", lang, err))
		}
		c.messages[tag.String()] = msgs
		if tag == defaultTag {
			continue
		}
		c.tags = append(c.tags, tag)
	}

	if _, ok := c.messages[defaultTag.String()]; !ok {
		return nil, fmt.Errorf("default language %q has no messages: %w", cfg.defaultLang, ErrNoMessages)
	}
	sort.Slice(c.tags, func(i, j int) bool {
		return c.tags[i].String() < c.tags[j].String()
	})
	c.tags = append([]language.Tag{defaultTag}, c.tags...)
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// NewFromYAML builds a catalog from a YAML document shaped as
//
//	en:
//	  validation.required: "This field is required"
//	de:
//	  validation.required: "Dieses Feld ist erforderlich"
func NewFromYAML(content []byte, opts ...Option) (*Catalog, error) {
	messages, err := ParseYAML(content)
	if err != nil {
		return nil, err
	}
	return New(messages, opts...)
}

// ParseYAML parses catalog YAML into a language→key→template map.
func ParseYAML(content []byte) (map[string]map[string]string, error) {
	var data map[string]map[string]string
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(data) == 0 {
		return nil, ErrNoMessages
	}
	return data, nil
}

// Languages returns the catalog's languages in matcher order, default
// first.
func (c *Catalog) Languages() []string {
	langs := make([]string, len(c.tags))
	for i, tag := range c.tags {
		langs[i] = tag.String()
	}
	return langs
}

// Translator returns a formkit.Translator bound to the closest supported
// language for the given tag. Unknown or unparsable tags fall back to the
// default language.
func (c *Catalog) Translator(lang string) formkit.Translator {
	_, index := language.MatchStrings(c.matcher, lang)
	matched := c.tags[index].String()

	return func(key string, values map[string]any) string {
		return c.message(matched, key, values)
	}
}

func (c *Catalog) message(lang, key string, values map[string]any) string {
	template, ok := c.messages[lang][key]
	if !ok {
		c.logger.Debug("missing translation", "language", lang, "key", key)
		return ""
	}
	return interpolate(template, values)
}

// interpolate fills {{placeholder}} tokens from the values map. Unknown
// placeholders are left in place so broken templates stay visible.
func interpolate(template string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	result := template
	for name, value := range values {
		result = strings.ReplaceAll(result, "{{"+name+"}}", fmt.Sprint(value))
	}
	return result
}
