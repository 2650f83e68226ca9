package middlewares

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger emits one structured access log line per request.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return ginzap.Ginzap(log, time.RFC3339, true)
}

// Recovery turns handler panics into 500 responses with a logged stack.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return ginzap.RecoveryWithZap(log, true)
}
