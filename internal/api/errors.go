package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/moviesapp/movies-server/internal/errors"
	"github.com/moviesapp/movies-server/internal/http/response"
	"github.com/moviesapp/movies-server/internal/service"
	"github.com/moviesapp/movies-server/internal/store"
	"github.com/moviesapp/movies-server/internal/validation"
)

// internalErrorMessage is the only text a 500 ever exposes.
const internalErrorMessage = "Internal server error"

// APIError is a custom error type that implements huma.StatusError.
// Validation failures fill Errors; every other failure fills Message.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Message string                  `json:"message,omitempty" doc:"Human-readable error message"`
	Errors  []validation.FieldError `json:"error,omitempty" doc:"Offending fields, set on validation failures"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" && len(e.Errors) > 0 {
		return "validation failed"
	}
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler(logger *slog.Logger) {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			if isDomainError(err) {
				return toAPIError(err)
			}
		}

		if status >= http.StatusInternalServerError {
			if logger != nil {
				logger.Error("Request failed", "status", status, "error", message)
			}
			return internalError()
		}

		// Huma's own request checks (malformed params, oversized body, ...).
		var fields []validation.FieldError
		for _, err := range errs {
			var detailer huma.ErrorDetailer
			if errors.As(err, &detailer) {
				d := detailer.ErrorDetail()
				fields = append(fields, validation.FieldError{
					Field:   fieldFromLocation(d.Location),
					Message: d.Message,
				})
			}
		}
		// Detail-less rejections (missing or oversized body) still get a field list.
		if len(fields) == 0 {
			fields = []validation.FieldError{{Field: "body", Message: message}}
		}
		// Payload problems are always reported as 400, like the validator's.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return &APIError{status: status, Errors: fields}
	}
}

// writeError answers from plain net/http middleware with the same shapes the
// huma operations use. A 403 carries no body.
func writeError(w http.ResponseWriter, err error, logger *slog.Logger) {
	apiErr := toAPIError(err)
	if apiErr.status >= http.StatusInternalServerError && logger != nil {
		logger.Error("Request failed", "error", err)
	}
	if apiErr.status == http.StatusForbidden {
		response.Forbidden(w)
		return
	}
	response.JSON(w, apiErr.status, apiErr, logger)
}

// handleError converts a service error into the response error, logging anything unexpected.
func (s *Server) handleError(ctx context.Context, err error) error {
	apiErr := toAPIError(err)
	if apiErr.status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx, "Request failed", "error", err)
	}
	return apiErr
}

// toAPIError maps domain and store errors onto the response shapes.
func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		if domainErr.Code == domainerrors.CodeValidation {
			fields := validation.FieldErrors(err)
			if len(fields) == 0 {
				fields = []validation.FieldError{{Field: "body", Message: domainErr.Message}}
			}
			return &APIError{status: http.StatusBadRequest, Errors: fields}
		}
		if domainErr.HTTPStatus() >= http.StatusInternalServerError {
			return internalError()
		}
		return &APIError{status: domainErr.HTTPStatus(), Message: domainErr.Message}
	}

	if isNotFoundError(err) {
		return &APIError{status: http.StatusNotFound, Message: service.MovieNotFoundMessage}
	}

	return internalError()
}

func internalError() *APIError {
	return &APIError{status: http.StatusInternalServerError, Message: internalErrorMessage}
}

func isDomainError(err error) bool {
	var domainErr *domainerrors.Error
	return errors.As(err, &domainErr) || isNotFoundError(err)
}

// isNotFoundError checks if the error is a "not found" type error from the store.
func isNotFoundError(err error) bool {
	var storeErr *store.Error
	return errors.As(err, &storeErr) && storeErr.HTTPCode() == http.StatusNotFound
}

// fieldFromLocation turns huma's "body.title" style locations into field names.
func fieldFromLocation(location string) string {
	if location == "" {
		return "body"
	}
	if rest, ok := strings.CutPrefix(location, "body."); ok {
		return rest
	}
	return location
}
