package middleware

import (
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/response"
)

// Recovery turns a handler panic into a 500 INTERNAL_ERROR body and logs it
// with the stack. It builds on gin's recovery, which also drops broken
// client connections without writing a response.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Errorw("panic recovered",
			"error", recovered,
			"method", c.Request.Method,
			"route", c.FullPath(),
			"request_id", GetRequestID(c),
			"stack", string(debug.Stack()),
		)

		response.Internal(c)
		c.Abort()
	})
}
