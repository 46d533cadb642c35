// Package errors centralizes how request-fatal failures are logged and
// reported. Handlers pass internal errors here; clients always receive a
// small JSON body with a presentable message, never the internal error.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs handler failures with request context and writes the
// matching JSON error response. Constructed once in bootstrap and shared
// by all feature handlers.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// LogServerError logs an internal failure and answers 500 with the given
// public message.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, publicMsg string) {
	e.Log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	writeError(w, http.StatusInternalServerError, publicMsg)
}

// BadRequest answers 400 with the given message. Validation failures are
// expected traffic and are not logged as errors.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

// NotFound answers 404 with the given message.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, msg)
}

// NotFoundHandler is the router's fallback for unknown paths.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found.")
}
