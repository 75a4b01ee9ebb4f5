package http

import (
	"regexp"

	"github.com/cagb07/gestor-centros-app/internal/domain/user"
	"github.com/cagb07/gestor-centros-app/internal/formengine"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reUsername = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// username = letters, digits, underscore, hyphen
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return reUsername.MatchString(fl.Field().String())
	})
	// role must be one of the two permitted roles
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return user.ValidRole(user.Role(fl.Field().String()))
	})
	// fieldtype must be a recognized form field type
	_ = v.RegisterValidation("fieldtype", func(fl validator.FieldLevel) bool {
		return formengine.KnownType(formengine.FieldType(fl.Field().String()))
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "username":
			out = append(out, FieldError{Field: field, Message: "may only contain letters, digits, '_' and '-'"})
		case "role":
			out = append(out, FieldError{Field: field, Message: "must be admin or operador"})
		case "fieldtype":
			out = append(out, FieldError{Field: field, Message: "is not a recognized field type"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must have at least " + e.Param() + " elements/characters"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must not exceed " + e.Param() + " elements/characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
