package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/naveen/management/internal/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an id, honoring one supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs each request with method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("requestID", c.GetString("requestID")).
			Msg("Request handled")
	}
}

// Recovery converts a handler panic into a generic 500 response in the
// contract the request asked for, without leaking internals.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Str("requestID", c.GetString("requestID")).
					Msg("Handler panic recovered")

				if WantsJSON(c) {
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"message": "Internal Server Error",
						"error":   "Something went wrong on our end.",
					})
					return
				}
				c.HTML(http.StatusInternalServerError, "server_error.tmpl", gin.H{
					"Title":  "Server Error",
					"Active": "",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// WantsJSON reports whether the request asked for the JSON contract: a JSON
// body or an Accept header naming application/json. Browser navigation sends
// neither, so it falls through to the HTML contract.
func WantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return strings.Contains(c.ContentType(), "application/json")
}
