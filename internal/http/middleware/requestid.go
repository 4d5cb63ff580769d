// README: Request-ID middleware: generate or pass through X-Request-Id.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxKeyRequestID = "request_id"

// RequestID stores a per-request ID in the context and echoes it in the
// response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, rid)
		c.Writer.Header().Set("X-Request-Id", rid)
		c.Next()
	}
}

// RequestIDFrom returns the current request's ID, or "".
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}
