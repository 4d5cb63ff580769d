// README: Redis INCR+TTL rate limiting.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit limits requests per key within a fixed window. keyFn builds
// the requester key (by IP, UID, ...); an empty key skips the check, and
// Redis failures fail open.
func RateLimit(rdb *redis.Client, prefix string, limit int, window time.Duration, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" || rdb == nil {
			c.Next()
			return
		}
		rkey := fmt.Sprintf("rl:%s:%s", prefix, key)
		cnt, err := rdb.Incr(c.Request.Context(), rkey).Result()
		if err == nil && cnt == 1 {
			// first hit in the window sets the TTL
			_ = rdb.Expire(c.Request.Context(), rkey, window).Err()
		}
		if err == nil && cnt > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
			return
		}
		c.Next()
	}
}
