package middleware

import (
	"time"

	"warp_ships/internal/app/handler/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestID - берёт id запроса из заголовка или генерирует новый
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger logs every request once it has been handled.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logrus.Debugf("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)

		c.Next()

		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		}).Infof("%s %s", c.Request.Method, c.Request.URL.Path)
	}
}

// Recovery turns a panic inside a handler into the usual JSON error body
// instead of dropping the connection.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logrus.Errorf("panic recovered: %v", recovered)
		api.Reject(c, api.ErrUnknown)
	})
}
