package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"medical-appointment-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Handle writes one access log entry per request.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		m.log.WithFields(logrus.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("HTTP request")
	})
}

// Recover turns a handler panic into a 500 response.
func (m *LoggingMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.WithFields(logrus.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"stack":  string(debug.Stack()),
				}).Errorf("Recovered from panic: %v", rec)
				response.InternalServerError(w, "")
			}
		}()

		next.ServeHTTP(w, req)
	})
}
