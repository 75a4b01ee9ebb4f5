package formengine

import "fmt"

// FieldError reports the first field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Validate checks a completed capture against its field list. Every
// required field must be present and non-blank: text must survive
// trimming, a dynamic table must have at least one row with a non-blank
// cell. The first failing field short-circuits.
func Validate(captured Capture, fields []FieldSpec) *FieldError {
	for _, f := range fields {
		if !f.Required {
			continue
		}
		v, ok := captured[f.Label]
		if !ok || v.blank() {
			return &FieldError{Field: f.Label, Message: "is required"}
		}
	}
	return nil
}
