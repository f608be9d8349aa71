package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

// Middleware labels by route pattern, not raw path, so session ids do not
// explode label cardinality.
func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}

		prometheus.RequestTotal.WithLabelValues(c.Method(), route, statusClass(status)).Inc()
		if prometheus.Config.EnableLatency {
			prometheus.RequestLatency.WithLabelValues(c.Method(), route).
				Observe(float64(time.Since(start).Milliseconds()))
		}
		return err
	}
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "5xx"
	}
	return strconv.Itoa(status/100) + "xx"
}
