package formengine

// Capture holds a submission in progress: field label to value.
type Capture map[string]Value

// Render builds the initial capture for a field list. A field whose label
// appears in prefill starts with that value; otherwise it starts with the
// type-appropriate empty value (empty string for text, empty row list for
// tables, absent for everything else). Label uniqueness is guaranteed by
// ValidateSpecs at template save time.
func Render(fields []FieldSpec, prefill map[string]Value) Capture {
	out := make(Capture, len(fields))
	for _, f := range fields {
		if v, ok := prefill[f.Label]; ok && !v.IsAbsent() {
			out[f.Label] = v
			continue
		}
		switch f.Type {
		case TypeText, TypeTextArea:
			out[f.Label] = Text("")
		case TypeDynamicTable:
			out[f.Label] = Table(nil)
		default:
			out[f.Label] = Absent()
		}
	}
	return out
}
