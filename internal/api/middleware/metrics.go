package middleware

import (
	"net/http"
	"strconv"
	"time"

	gorilla "github.com/gorilla/mux"

	"github.com/anvitha1105/Capstone-finalreview/internal/metrics"
	"github.com/anvitha1105/Capstone-finalreview/internal/middleware"
)

// Metrics creates middleware that records request counts and latency.
// The route label is the mux template, not the raw path, so collected
// series stay bounded.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &middleware.ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wrapped, r)

			route := r.URL.Path
			if current := gorilla.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveRequest(r.Method, route, strconv.Itoa(status), time.Since(start))
		})
	}
}
