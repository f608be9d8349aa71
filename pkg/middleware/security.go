package middleware

import (
	"github.com/NeuralTrust/MaskFlow/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type securityMiddleware struct{}

// NewSecurityMiddleware sets the response headers every API answer carries.
// Responses hold record data and must not be cached. A request id is echoed
// back, or generated when the caller did not send one.
func NewSecurityMiddleware() Middleware {
	return &securityMiddleware{}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderXFrameOptions, "DENY")
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		c.Set(fiber.HeaderReferrerPolicy, "no-referrer")
		c.Set(fiber.HeaderCacheControl, "no-store")

		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(common.RequestIDHeader, requestID)
		return c.Next()
	}
}
