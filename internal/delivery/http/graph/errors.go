package graph

import (
	"log/slog"
	"net/http"
	"strings"

	domainerrors "habit/internal/domain/errors"
	"habit/internal/domain/validation"

	"github.com/pkg/errors"
)

// Error is returned by resolvers. graphql-go copies Extensions into the
// response, giving clients the HTTP status and business code under
// extensions.http.
type Error struct {
	message string
	http    HTTPExtension
}

// HTTPExtension is the content of extensions.http.
type HTTPExtension struct {
	Status           int                 `json:"status"`
	Code             string              `json:"code"`
	Message          string              `json:"message"`
	ValidationResult []ValidationOutcome `json:"validationResult,omitempty"`
}

// ValidationOutcome reports one failed rule.
type ValidationOutcome struct {
	OK    bool               `json:"ok"`
	Error validation.Failure `json:"error"`
}

func (e *Error) Error() string {
	return e.message
}

// Extensions implements the graphql-go extensions interface.
func (e *Error) Extensions() map[string]any {
	return map[string]any{"http": e.http}
}

// Status is the HTTP status the error maps to.
func (e *Error) Status() int {
	return e.http.Status
}

// NewError converts err into an Error. Errors that are not application errors,
// and 5xx application errors, are logged and reported without their details.
func NewError(logger *slog.Logger, err error) *Error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		message := "[" + validationErr.Details() + "] Validation failed"
		outcomes := make([]ValidationOutcome, 0, len(validationErr.Failures()))
		for _, failure := range validationErr.Failures() {
			outcomes = append(outcomes, ValidationOutcome{OK: false, Error: failure})
		}

		return &Error{
			message: message,
			http: HTTPExtension{
				Status:           validationErr.HTTPCode(),
				Code:             validationErr.ErrorCode(),
				Message:          message,
				ValidationResult: outcomes,
			},
		}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		message := clientMessage(err, appErr)

		return &Error{
			message: message,
			http: HTTPExtension{
				Status:  appErr.HTTPCode(),
				Code:    appErr.ErrorCode(),
				Message: message,
			},
		}
	}

	logger.Error("GraphQL resolver failed", slog.Any("error", err))

	internal := domainerrors.ErrInternalError
	if appErr != nil {
		internal = domainerrors.NewBaseError(appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), "")
	}

	return &Error{
		message: internal.Message(),
		http: HTTPExtension{
			Status:  internal.HTTPCode(),
			Code:    internal.ErrorCode(),
			Message: internal.Message(),
		},
	}
}

// clientMessage keeps the context wrapped around appErr and drops the repeated
// text of appErr itself. Details are never part of it.
func clientMessage(err error, appErr domainerrors.AppError) string {
	if wrapped, ok := strings.CutSuffix(err.Error(), ": "+appErr.Error()); ok && wrapped != "" {
		return wrapped
	}

	return appErr.Message()
}
