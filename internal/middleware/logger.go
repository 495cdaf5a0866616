// Package middleware provides HTTP middleware functions.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger returns a middleware that writes one structured entry per request.
// The route template is logged next to the concrete path so requests can be
// grouped by endpoint.
func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes_out", c.Writer.Size(),
			"client_ip", c.ClientIP(),
			"request_id", GetRequestID(c),
		}
		if query != "" {
			fields = append(fields, "query", query)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		logFor(logger, status)("request completed", fields...)
	}
}

// logFor picks the level from the response status: 5xx error, 4xx warn.
func logFor(logger *zap.SugaredLogger, status int) func(string, ...interface{}) {
	switch {
	case status >= 500:
		return logger.Errorw
	case status >= 400:
		return logger.Warnw
	default:
		return logger.Infow
	}
}
