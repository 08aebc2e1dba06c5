package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog пишет строку лога на каждый запрос
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			id := RequestIDFromContext(r.Context())
			if rec.status >= http.StatusInternalServerError {
				logger.Error("%s %s - %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, duration, id)
				return
			}
			logger.Info("%s %s - %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, duration, id)
		})
	}
}
