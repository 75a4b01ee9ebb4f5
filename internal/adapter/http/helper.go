package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cagb07/gestor-centros-app/internal/auth"
	"github.com/cagb07/gestor-centros-app/internal/domain/area"
	"github.com/cagb07/gestor-centros-app/internal/domain/submission"
	"github.com/cagb07/gestor-centros-app/internal/domain/template"
	"github.com/cagb07/gestor-centros-app/internal/domain/user"
	"github.com/cagb07/gestor-centros-app/internal/formengine"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// respondErr converts a usecase error into the JSON error payload and
// the closest HTTP status. Unexpected errors come back generic so
// internals never leak.
func respondErr(c echo.Context, err error) error {
	var fieldErr *formengine.FieldError
	if errors.As(err, &fieldErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: fieldErr.Field, Message: fieldErr.Message}},
		})
	}
	var specErr *formengine.SpecError
	if errors.As(err, &specErr) {
		field := specErr.Label
		if field == "" {
			field = fmt.Sprintf("field #%d", specErr.Index+1)
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid template definition",
			Details: []FieldError{{Field: field, Message: specErr.Message}},
		})
	}

	switch {
	case errors.Is(err, area.ErrNotFound),
		errors.Is(err, template.ErrNotFound),
		errors.Is(err, submission.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})

	case errors.Is(err, area.ErrDuplicateName),
		errors.Is(err, user.ErrDuplicateUsername):
		return c.JSON(http.StatusConflict, map[string]string{"error": "already exists"})

	case errors.Is(err, area.ErrInUse),
		errors.Is(err, template.ErrInUse),
		errors.Is(err, user.ErrSelfDelete):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})

	case errors.Is(err, area.ErrInvalidName),
		errors.Is(err, template.ErrInvalidName),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrUsernameEmpty),
		errors.Is(err, auth.ErrUsernameTooLong),
		errors.Is(err, auth.ErrUsernameCharset),
		errors.Is(err, auth.ErrFullNameEmpty),
		errors.Is(err, auth.ErrFullNameTooLong):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
