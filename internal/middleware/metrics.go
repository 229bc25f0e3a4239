package middleware

import (
	"strconv"
	"time"

	"quizforge/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latencies, labelled by route pattern.
// Register it before RequestLogger so the recorded status is final.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
