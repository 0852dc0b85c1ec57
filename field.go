package formkit

// Field is a read-only snapshot of one field's state.
type Field struct {
	// Value is the current content of the field.
	Value string

	// Touched reports whether the user has left or confirmed the field at
	// least once, or it was swept up by ValidateAll.
	Touched bool

	// Error is the message currently shown for the field. "" means no
	// visible error; untouched fields never show one during typing.
	Error string

	// Valid reflects the rule outcome for the current value, independent
	// of Touched.
	Valid bool
}

// fieldState is the live, mutable record behind a Field snapshot.
type fieldState struct {
	initial  string
	value    string
	touched  bool
	err      string
	valid    bool
	override bool
}

func (st *fieldState) snapshot() Field {
	return Field{
		Value:   st.value,
		Touched: st.touched,
		Error:   st.err,
		Valid:   st.valid,
	}
}
