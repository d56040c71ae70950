package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventsnap/pkg/utils"
)

// TraceIDMiddleware tags the request with a trace id and a logger carrying it.
func TraceIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		utils.SetLogger(c, logger.With(zap.String("trace_id", traceID)))
		c.Next()
	}
}
