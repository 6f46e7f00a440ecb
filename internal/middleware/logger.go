package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/menstrualmentor/backend/internal/logger"
	"github.com/menstrualmentor/backend/internal/metrics"
)

// RequestLogger assigns every request an ID (reusing a well-formed
// X-Request-ID from the client), stores a request-scoped logger in the
// context and logs one line per request. m may be nil.
func RequestLogger(log logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(logger.RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = logger.NewRequestID()
		}
		c.Set("request_id", requestID)
		c.Header(logger.RequestIDHeader, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		ctx = logger.WithLogger(ctx, log)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		if m != nil {
			m.RequestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Observe(latency.Seconds())
		}

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", latency),
			logger.String("client_ip", c.ClientIP()),
		}

		// Auth runs after this middleware, so the user ID is only known now
		entry := logger.Ctx(c.Request.Context())
		switch {
		case status >= 500:
			entry.Error("request completed", fields...)
		case status >= 400:
			entry.Warn("request completed", fields...)
		default:
			entry.Info("request completed", fields...)
		}
	}
}
