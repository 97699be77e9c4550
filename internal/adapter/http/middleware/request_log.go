package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	log = logger.OrNop(log)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if v := c.GetString(requestIDKey); v != "" {
			fields = append(fields, "request_id", v)
		}
		if v := c.GetString(traceIDKey); v != "" {
			fields = append(fields, "trace_id", v)
		}
		if actor, ok := ActorFromContext(c); ok {
			fields = append(fields, "user_id", actor.UserID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
