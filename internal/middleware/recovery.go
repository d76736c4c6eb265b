package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/hevystats/internal/telemetry/metrics"
	"github.com/2beens/hevystats/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a JSON 500, in the same shape the
// API handlers use for their errors.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				log.WithFields(log.Fields{
					"method": r.Method,
					"route":  routeTemplate(r),
				}).Errorf("panic serving %s: %v\n%s", r.URL.Path, recovered, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteMessage(w, "internal server error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
