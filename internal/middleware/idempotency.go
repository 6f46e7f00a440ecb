package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menstrualmentor/backend/internal/apierror"
	"github.com/menstrualmentor/backend/internal/logger"
	"github.com/menstrualmentor/backend/internal/repository"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
)

// idempotencyBodyWriter wraps gin.ResponseWriter to capture the response body for idempotency caching
type idempotencyBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *idempotencyBodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a POST carries an
// Idempotency-Key already seen for the same route and user, so a retried
// cycle log is stored once. Only 2xx responses are stored. Must run after Auth.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		method := c.Request.Method
		key := c.GetHeader(IdempotencyKeyHeader)
		if method != http.MethodPost || key == "" {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		if userID == "" {
			log.Warn("idempotency check failed: no user_id in context")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		route := method + " " + c.FullPath()

		log.Debug("checking idempotency",
			logger.String("key", key),
			logger.String("route", route),
			logger.String("user_id", userID),
		)

		existing, err := repo.Get(c.Request.Context(), key, route, userID)
		if err != nil {
			log.Error("failed to check idempotency key",
				logger.Err(err),
				logger.String("key", key),
			)
			// A lookup failure must not block the write itself
			c.Next()
			return
		}

		if existing != nil {
			log.Info("replaying idempotent response",
				logger.String("key", key),
				logger.String("route", route),
				logger.Int("status_code", existing.StatusCode),
			)

			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.StatusCode, "application/json", existing.ResponseBody)
			c.Abort()
			return
		}

		blw := &idempotencyBodyWriter{
			body:           bytes.NewBuffer(nil),
			ResponseWriter: c.Writer,
		}
		c.Writer = blw

		c.Next()

		statusCode := c.Writer.Status()
		if statusCode >= 200 && statusCode < 300 {
			if err := repo.Store(c.Request.Context(), key, route, userID, blw.body.Bytes(), statusCode); err != nil {
				log.Warn("failed to store idempotency key",
					logger.Err(err),
					logger.String("key", key),
				)
			} else {
				log.Debug("stored idempotency key",
					logger.String("key", key),
					logger.String("route", route),
					logger.Int("status_code", statusCode),
				)
			}
		}
	}
}
