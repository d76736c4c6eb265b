package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/hevystats/internal/telemetry/metrics"
	"github.com/2beens/hevystats/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware

const rateLimitKeyPrefix = "hevy:ratelimit:"

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows perMinute requests per minute to the wrapped routes,
// shared by all clients under one name. When the limiter itself fails the
// request is let through.
func RateLimit(
	rateLimiter RequestRateLimiter,
	name string,
	perMinute int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	key := rateLimitKeyPrefix + name
	limit := redis_rate.PerMinute(perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := rateLimiter.Allow(r.Context(), key, limit)
			if err != nil {
				log.Errorf("rate limiter [%s], letting request through: %s", name, err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteMessage(w, fmt.Sprintf("%s rate limit reached, retry in %ds", name, retryAfter), http.StatusTooManyRequests)
		})
	}
}
