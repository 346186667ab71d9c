// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorLogger logs handler failures with request context and writes the
// JSON error body. Handlers hold one and call it instead of http.Error.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	f := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		f = append(f, zap.String("request_id", id))
	}
	if err != nil {
		f = append(f, zap.Error(err))
	}
	return f
}

// LogServerError logs at Error and responds 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Error(msg, e.fields(r, err)...)
	WriteError(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs at Warn and responds 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Warn(msg, e.fields(r, err)...)
	WriteError(w, http.StatusBadRequest, userMsg)
}

// LogStatus logs at Info and responds with the given client-error status.
func (e *ErrorLogger) LogStatus(w http.ResponseWriter, r *http.Request, status int, msg string, err error, userMsg string) {
	e.log.Info(msg, append(e.fields(r, err), zap.Int("status", status))...)
	WriteError(w, status, userMsg)
}
