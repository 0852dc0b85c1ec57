package schema

import (
	"errors"
	"fmt"
	"regexp"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit"
)

// Descriptor is a fully resolved rule-descriptor document.
type Descriptor struct {
	Rules   map[string]formkit.Rules
	Initial map[string]string
}

// Form builds a formkit.Form from the descriptor, applying the document's
// initial values before any caller-supplied options.
func (d *Descriptor) Form(opts ...formkit.Option) *formkit.Form {
	if len(d.Initial) > 0 {
		opts = append([]formkit.Option{formkit.WithInitialValues(d.Initial)}, opts...)
	}
	return formkit.New(d.Rules, opts...)
}

// Option configures descriptor parsing.
type Option func(*config)

type config struct {
	custom map[string]func(string) string
}

// WithCustomRule registers a named predicate that documents can reference
// through the "custom" key. The function returns a failure message, or ""
// to pass.
func WithCustomRule(name string, fn func(value string) string) Option {
	return func(c *config) {
		c.custom[name] = fn
	}
}

// ParseYAML parses a YAML rule-descriptor document.
func ParseYAML(content []byte, opts ...Option) (*Descriptor, error) {
	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return build(doc, newConfig(opts))
}

// ParseJSON parses a JSON rule-descriptor document.
func ParseJSON(content []byte, opts ...Option) (*Descriptor, error) {
	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return build(doc, newConfig(opts))
}

func newConfig(opts []Option) config {
	cfg := config{custom: make(map[string]func(string) string)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// document mirrors the on-disk layout before rule resolution.
type document struct {
	Fields  map[string]fieldSpec `yaml:"fields" json:"fields"`
	Initial map[string]string    `yaml:"initial" json:"initial"`
}

type fieldSpec struct {
	Required  flagValue     `yaml:"required" json:"required"`
	Email     flagValue     `yaml:"email" json:"email"`
	MinLength *boundValue   `yaml:"minLength" json:"minLength"`
	MaxLength *boundValue   `yaml:"maxLength" json:"maxLength"`
	Pattern   *patternValue `yaml:"pattern" json:"pattern"`
	Custom    string        `yaml:"custom" json:"custom"`
}

// flagValue accepts either a boolean (true = enabled with the default
// message) or a string (enabled with that custom message).
type flagValue struct {
	enabled bool
	message string
}

func (v *flagValue) UnmarshalYAML(node *yaml.Node) error {
	var enabled bool
	if err := node.Decode(&enabled); err == nil {
		*v = flagValue{enabled: enabled}
		return nil
	}

	var message string
	if err := node.Decode(&message); err == nil {
		*v = flagValue{enabled: true, message: message}
		return nil
	}

	return fmt.Errorf("%w: expected bool or string, got %s", ErrInvalidRuleValue, node.Tag)
}

func (v *flagValue) UnmarshalJSON(data []byte) error {
	var enabled bool
	if err := json.Unmarshal(data, &enabled); err == nil {
		*v = flagValue{enabled: enabled}
		return nil
	}

	var message string
	if err := json.Unmarshal(data, &message); err == nil {
		*v = flagValue{enabled: true, message: message}
		return nil
	}

	return fmt.Errorf("%w: expected bool or string, got %s", ErrInvalidRuleValue, string(data))
}

func (v flagValue) rule() formkit.Flag {
	switch {
	case !v.enabled:
		return formkit.Flag{}
	case v.message != "":
		return formkit.WithMessage(v.message)
	default:
		return formkit.Enabled()
	}
}

type boundValue struct {
	Value   int    `yaml:"value" json:"value"`
	Message string `yaml:"message" json:"message"`
}

type patternValue struct {
	Value   string `yaml:"value" json:"value"`
	Message string `yaml:"message" json:"message"`
}

// build resolves the raw document into typed rules, compiling patterns and
// binding named custom predicates.
func build(doc document, cfg config) (*Descriptor, error) {
	if len(doc.Fields) == 0 {
		return nil, ErrNoFields
	}

	rules := make(map[string]formkit.Rules, len(doc.Fields))
	for name, spec := range doc.Fields {
		r := formkit.Rules{
			Required: spec.Required.rule(),
			Email:    spec.Email.rule(),
		}

		if spec.MinLength != nil {
			r.MinLength = &formkit.Bound{Value: spec.MinLength.Value, Message: spec.MinLength.Message}
		}
		if spec.MaxLength != nil {
			r.MaxLength = &formkit.Bound{Value: spec.MaxLength.Value, Message: spec.MaxLength.Message}
		}

		if spec.Pattern != nil {
			re, err := regexp.Compile(spec.Pattern.Value)
			if err != nil {
				return nil, errors.Join(ErrInvalidPattern, fmt.Errorf("field %q: %w", name, err))
			}
			r.Pattern = &formkit.PatternRule{Regexp: re, Message: spec.Pattern.Message}
		}

		if spec.Custom != "" {
			fn, ok := cfg.custom[spec.Custom]
			if !ok {
				return nil, fmt.Errorf("field %q references %q: %w", name, spec.Custom, ErrUnknownCustomRule)
			}
			r.Custom = fn
		}

		rules[name] = r
	}

	return &Descriptor{Rules: rules, Initial: doc.Initial}, nil
}
