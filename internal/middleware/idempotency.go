package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"workforce_project/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key
// instead of re-running the write. Requests without the header pass
// through untouched. Cache entries are scoped to the authenticated user,
// so the same key presented by two users never replays across accounts.
func Idempotency(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := "idempotency:" + c.GetString(ContextUserID) + ":" + key

		if data, err := client.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				logger.Logger.Info("Returning cached response", zap.String("key", key))
				c.Data(cached.Status, "application/json", cached.Body)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			logger.Logger.Error("Redis get error", zap.Error(err))
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		status := recorder.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			data, err := json.Marshal(cachedResponse{Status: status, Body: recorder.body.Bytes()})
			if err != nil {
				logger.Logger.Error("Failed to marshal cached response", zap.Error(err))
				return
			}
			if err := client.Set(ctx, cacheKey, data, idempotencyTTL).Err(); err != nil {
				logger.Logger.Error("Redis set error", zap.Error(err))
				return
			}
			logger.Logger.Info("Stored idempotent response", zap.String("key", key))
		}
	}
}
