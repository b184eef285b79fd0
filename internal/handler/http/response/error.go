package response

import (
	"errors"
	"net/http"

	"github.com/161corp/hr-backend-go/internal/domain/auth"
	"github.com/161corp/hr-backend-go/internal/domain/report"
	"github.com/161corp/hr-backend-go/internal/domain/user"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/export"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation errors from request DTOs
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, "Validation failed", validationErrs.ToMap())
		return
	}

	// Translated backend and normalization errors
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperr.KindValidation:
			ValidationError(w, appErr.Message, nil)
		case apperr.KindNotFound:
			NotFound(w, appErr.Message)
		case apperr.KindDeleteConstraint:
			Conflict(w, appErr.Message)
		default:
			InternalServerError(w, appErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		ValidationError(w, err.Error(), nil)
	case errors.Is(err, report.ErrUnknownReport):
		NotFound(w, err.Error())
	case errors.Is(err, export.ErrNoRows):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
