// Package response writes JSON replies from plain net/http handlers and
// middleware that run outside the huma operation pipeline.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MessageBody is the {message} shape shared by every non-validation error.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Message writes a {message} body with the given status code.
func Message(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	JSON(w, status, MessageBody{Message: message}, logger)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Message(w, http.StatusNotFound, message, logger)
}

// MethodNotAllowed writes a 405 Method Not Allowed response.
func MethodNotAllowed(w http.ResponseWriter, message string, logger *slog.Logger) {
	Message(w, http.StatusMethodNotAllowed, message, logger)
}

// Forbidden writes a bare 403 with no body. Used for transport-level
// rejections where the caller is not meant to read a payload.
func Forbidden(w http.ResponseWriter) {
	w.WriteHeader(http.StatusForbidden)
}
