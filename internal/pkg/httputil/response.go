// Package httputil provides JSON response helpers and the standard
// {error, message} envelope returned by every failing endpoint.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/ignite/working-date-service/internal/pkg/logger"
)

// ErrorResponse is the standard error envelope for all API errors.
// Error carries a stable machine-readable code; Message is human-readable.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code. The data is
// serialized and Content-Type is set automatically.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

// OK writes a 200 response with the given data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error writes a JSON error response with a stable code and message.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorResponse{Error: code, Message: message})
}

// BadRequest writes a 400 InvalidParameters error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, "InvalidParameters", message)
}

// NotFound writes a 404 NotFound error.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, "NotFound", message)
}

// ServiceUnavailable writes a 503 error with the given code.
func ServiceUnavailable(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusServiceUnavailable, code, message)
}

// InternalError writes a 500 error. Logs the real error but returns a
// generic message to the client (never leak internals).
func InternalError(w http.ResponseWriter, err error) {
	logger.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, "InternalError", "an internal server error occurred")
}
