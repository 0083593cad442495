package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"querykit/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request an identifier, reusing the one the
// client sent when present. It is stored on the request context so the
// logger can attach it to every line.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, reqID)

		c.Next()
	}
}
