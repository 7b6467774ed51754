package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the context key shared by the middleware chain and the
// handler error path.
const requestIDKey = "request_id"

// RequestID injects an X-Request-ID header into the request and response.
// Incoming IDs are propagated so one request traces across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// GetRequestID returns the request-scoped ID, or "" when called outside
// the middleware chain.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger logs one line per request: id, method, path (with query),
// status, latency, client IP, and any errors handlers attached.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		if len(c.Errors) > 0 {
			log.Printf("[%s] %s %s %d %s %s errors=%s",
				GetRequestID(c), c.Request.Method, path,
				c.Writer.Status(), time.Since(start), c.ClientIP(),
				c.Errors.String())
			return
		}
		log.Printf("[%s] %s %s %d %s %s",
			GetRequestID(c), c.Request.Method, path,
			c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}

// Recovery converts panics into the standard error envelope instead of
// gin's default empty 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[%s] panic recovered: %v", GetRequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "an internal error occurred"},
		})
	})
}
