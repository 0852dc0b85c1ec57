package formkit

import "maps"

// Translator renders a localized message for a translation key. Values
// carries the metadata referenced by the message template (field name,
// configured bounds, ...). Returning "" falls back to the built-in default
// message for the key.
type Translator func(key string, values map[string]any) string

// Normalizer transforms a raw input value before rule evaluation.
type Normalizer func(value string) string

// Form tracks the state of one data-entry form: per-field values, touched
// flags, errors and validity, plus the derived form-wide view.
//
// A Form is owned by the single caller that constructed it and is not safe
// for concurrent use. Every operation is synchronous and never panics;
// operations on undeclared field names are no-ops.
type Form struct {
	rules       map[string]Rules
	fields      map[string]*fieldState
	normalizers map[string][]Normalizer
	translator  Translator
	initial     map[string]string
}

// Option configures a Form at construction time.
type Option func(*Form)

// WithInitialValues pre-populates fields by name. Names without a declared
// field are ignored; declared fields without an entry start empty.
func WithInitialValues(values map[string]string) Option {
	return func(f *Form) {
		f.initial = values
	}
}

// WithNormalizers registers transformations applied to a field's value, in
// order, before every rule evaluation. They run on the initial value as
// well as on every SetValue.
func WithNormalizers(field string, fns ...Normalizer) Option {
	return func(f *Form) {
		f.normalizers[field] = append(f.normalizers[field], fns...)
	}
}

// WithTranslator sets the translator used to localize default rule
// messages. Caller-authored messages bypass it.
func WithTranslator(t Translator) Option {
	return func(f *Form) {
		f.translator = t
	}
}

// New builds a form with one field per entry in rules. Each field starts
// untouched and without an error; validity is computed against the initial
// value, so a required-but-empty field starts invalid while an optional
// empty field starts valid.
//
// The declared field set is fixed for the lifetime of the form.
func New(rules map[string]Rules, opts ...Option) *Form {
	f := &Form{
		rules:       make(map[string]Rules, len(rules)),
		fields:      make(map[string]*fieldState, len(rules)),
		normalizers: make(map[string][]Normalizer),
	}
	maps.Copy(f.rules, rules)

	for _, opt := range opts {
		opt(f)
	}

	for name, r := range f.rules {
		value := f.normalize(name, f.initial[name])
		st := &fieldState{initial: value, value: value}
		st.valid = r.evaluate(name, value) == nil
		f.fields[name] = st
	}
	f.initial = nil

	return f
}

// SetValue overwrites the field's value and recomputes its validity. The
// error message is refreshed only for touched fields, so users can type
// freely without seeing errors before they leave the field. Any manual
// override set via SetError is replaced by rule-driven evaluation.
func (f *Form) SetValue(name, value string) {
	st, ok := f.fields[name]
	if !ok {
		return
	}

	st.value = f.normalize(name, value)
	st.override = false

	v := f.rules[name].evaluate(name, st.value)
	st.valid = v == nil
	if st.touched {
		st.err = f.render(v)
	} else {
		st.err = ""
	}
}

// SetTouched marks the field as interacted with and immediately computes
// its error from the current value.
func (f *Form) SetTouched(name string) {
	st, ok := f.fields[name]
	if !ok {
		return
	}

	st.touched = true
	st.override = false

	v := f.rules[name].evaluate(name, st.value)
	st.valid = v == nil
	st.err = f.render(v)
}

// SetError sets a field error directly, bypassing rule evaluation. It
// exists for externally-sourced failures the rule set cannot express, such
// as a server-rejected value after submission. A non-empty message marks
// the field touched and invalid; an empty message clears the override and
// restores rule-derived validity. The next SetValue on the field resumes
// ordinary rule-driven error computation either way.
func (f *Form) SetError(name, message string) {
	st, ok := f.fields[name]
	if !ok {
		return
	}

	st.touched = true
	if message != "" {
		st.override = true
		st.err = message
		st.valid = false
		return
	}

	st.override = false
	st.err = ""
	st.valid = f.rules[name].evaluate(name, st.value) == nil
}

// ValidateAll sweeps every declared field: marks it touched and recomputes
// its error and validity against the current value. It returns the
// form-wide validity after the sweep and is typically called immediately
// before attempting submission.
func (f *Form) ValidateAll() bool {
	for name, st := range f.fields {
		st.touched = true
		st.override = false

		v := f.rules[name].evaluate(name, st.value)
		st.valid = v == nil
		st.err = f.render(v)
	}
	return f.Valid()
}

// Reset restores every field to its construction-time value, untouched and
// without an error, with validity recomputed. Reset is idempotent.
func (f *Form) Reset() {
	for name, st := range f.fields {
		st.value = st.initial
		st.touched = false
		st.err = ""
		st.override = false
		st.valid = f.rules[name].evaluate(name, st.initial) == nil
	}
}

// Values returns a plain name-to-value mapping of the current field
// values, suitable for building a submission payload.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for name, st := range f.fields {
		values[name] = st.value
	}
	return values
}

// Fields returns a snapshot of every field's state.
func (f *Form) Fields() map[string]Field {
	fields := make(map[string]Field, len(f.fields))
	for name, st := range f.fields {
		fields[name] = st.snapshot()
	}
	return fields
}

// Field returns the snapshot for one field and whether the name is
// declared.
func (f *Form) Field(name string) (Field, bool) {
	st, ok := f.fields[name]
	if !ok {
		return Field{}, false
	}
	return st.snapshot(), true
}

// Valid reports form-wide validity: every declared field passes its rules.
func (f *Form) Valid() bool {
	for _, st := range f.fields {
		if !st.valid {
			return false
		}
	}
	return true
}

// Dirty reports whether at least one field has been touched.
func (f *Form) Dirty() bool {
	for _, st := range f.fields {
		if st.touched {
			return true
		}
	}
	return false
}

func (f *Form) normalize(name, value string) string {
	for _, fn := range f.normalizers[name] {
		value = fn(value)
	}
	return value
}

// render resolves a violation into the message shown to the user,
// preferring the translator for default messages that carry a key.
func (f *Form) render(v *violation) string {
	if v == nil {
		return ""
	}
	if f.translator != nil && v.Key != "" {
		if msg := f.translator(v.Key, v.Values); msg != "" {
			return msg
		}
	}
	return v.Message
}
