package middlewares

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
)

// RateLimit caps each client IP to limit requests per minute, counted in a
// Redis fixed window. Redis being down fails open so an outage never takes
// the API with it.
func RateLimit(next http.Handler, redisUrl string, limit int64) http.Handler {
	if redisUrl == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		redisClient := helpers.RedisHelper(redisUrl)
		ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
		defer cancel()

		key := "rate_limit:" + ip + ":" + time.Now().UTC().Format("2006-01-02T15:04")
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			redisClient.Expire(ctx, key, time.Minute)
		}

		if count > limit {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
