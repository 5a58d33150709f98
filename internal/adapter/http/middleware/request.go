// Package middleware holds the gin middleware chain shared by every route.
package middleware

import (
	"net/http"
	"time"

	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDKey    = "request_id"
	HeaderRequestID = "X-Request-ID"
)

// RequestID reuses the caller's X-Request-ID or mints one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Logger logs each request once it has been served.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("performed_by", c.GetHeader("X-Performed-By")).
			Msg("[http] request")
	}
}

// Recovery turns a panic into a 500 envelope; the panic value is logged, never returned.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("[http] panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError).ToHTTPError())
			}
		}()
		c.Next()
	}
}
