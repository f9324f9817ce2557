package middleware

import (
	"go-hris-graphql/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger stores a request scoped logger carrying the request id and
// client ip. It expects RequestID to run first.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rid := contextutil.GetRequestID(ctx)
		ip := c.ClientIP()

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("client_ip", ip),
		)

		ctx = contextutil.WithClientIP(ctx, ip)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
