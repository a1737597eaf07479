// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs server-side logging with a user-safe error page,
// so handlers never leak internal error text into a response.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger writing to the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs err with full detail and shows the user a generic
// failure page with a 500 status.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, userMsg string, err error) {
	e.log.Error("internal error",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	if userMsg == "" {
		userMsg = "Something went wrong. Please try again."
	}
	w.WriteHeader(http.StatusInternalServerError)
	RenderForbidden(w, r, userMsg, "/")
}

// BadRequest logs at warn level and shows the message with a 400 status.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, r *http.Request, userMsg string, err error) {
	e.log.Warn("bad request",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	w.WriteHeader(http.StatusBadRequest)
	RenderForbidden(w, r, userMsg, "")
}
