package middlewares

import (
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
)

// RateLimitMiddleware limits requests per client IP using a Redis counter.
// Counting uses INCR + EXPIRE in one pipeline. When Redis is unreachable the
// middleware fails open and lets the request through.
func RateLimitMiddleware(client *redis.Client, maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			key := "ratelimit:" + host

			pipe := client.Pipeline()
			incr := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, window)
			if _, err := pipe.Exec(ctx); err != nil {
				logger.Log.Errorw("rate limit pipeline failed, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if incr.Val() > int64(maxRequests) {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
