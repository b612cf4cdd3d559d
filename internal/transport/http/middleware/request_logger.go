// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request with its status and duration. Health
// probes are skipped to keep the log usable at short probe intervals.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	httpLog := log.Named("http")
	return func(c *fiber.Ctx) error {
		if c.Path() == "/healthz" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals("requestid").(string)
		httpLog.Infow("request handled",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"request_id", reqID,
		)
		return err
	}
}
