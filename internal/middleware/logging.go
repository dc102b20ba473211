// Package middleware provides the HTTP middleware chain: request ids, client
// origin resolution, response compression and access logging.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// AccessEmitter forwards one access-log event per response to the remote
// collector. Satisfied by remotelog.Dispatcher.
type AccessEmitter interface {
	Emit(stack, level, pkg, message string) error
}

type (
	// responseData holds the status and size of an HTTP response.
	responseData struct {
		status int
		size   int
	}

	// loggingResponseWriter captures the status code and response size for
	// logging.
	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.status == 0 {
		r.responseData.status = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// WithRequestLogging logs every request to zap and emits the access event to
// the remote collector. The emitter call is fire-and-forget, so the response
// never waits on log delivery.
func WithRequestLogging(log *zap.Logger, emitter AccessEmitter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			responseData := &responseData{}
			lw := loggingResponseWriter{
				ResponseWriter: w,
				responseData:   responseData,
			}

			next.ServeHTTP(&lw, r)

			duration := time.Since(start)

			log.Info("HTTP Request",
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.String("requestID", RequestIDFromContext(r.Context())),
				zap.Duration("duration", duration),
				zap.Int("status", responseData.status),
				zap.Int("size", responseData.size),
			)

			if emitter != nil {
				_ = emitter.Emit("backend", "info", "middleware",
					fmt.Sprintf("Request: %s %s - Response Status: %d", r.Method, r.URL.Path, responseData.status))
			}
		})
	}
}
