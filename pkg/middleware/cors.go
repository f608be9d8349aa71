package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowCredentials bool
	ExposeHeaders    []string
	MaxAge           int
}

type corsMiddleware struct {
	cfg CORSConfig
}

// NewCORSMiddleware lets the browser console call the API from its own
// origin. It is a no-op when no origins are configured.
func NewCORSMiddleware(cfg CORSConfig) Middleware {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodOptions,
		}
	}
	return &corsMiddleware{cfg: cfg}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || !m.allowed(origin) {
			return c.Next()
		}

		c.Vary(fiber.HeaderOrigin)
		if m.cfg.AllowCredentials || !hasStar(m.cfg.AllowOrigins) {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		} else {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		}
		if m.cfg.AllowCredentials {
			c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		}
		if len(m.cfg.ExposeHeaders) > 0 {
			c.Set(fiber.HeaderAccessControlExposeHeaders, strings.Join(m.cfg.ExposeHeaders, ", "))
		}

		if c.Method() != fiber.MethodOptions || c.Get(fiber.HeaderAccessControlRequestMethod) == "" {
			return c.Next()
		}

		c.Set(fiber.HeaderAccessControlAllowMethods, strings.Join(m.cfg.AllowMethods, ", "))
		if reqHeaders := c.Get(fiber.HeaderAccessControlRequestHeaders); reqHeaders != "" {
			c.Set(fiber.HeaderAccessControlAllowHeaders, reqHeaders)
		} else {
			c.Set(fiber.HeaderAccessControlAllowHeaders, "Authorization, Content-Type")
		}
		if m.cfg.MaxAge > 0 {
			c.Set(fiber.HeaderAccessControlMaxAge, strconv.Itoa(m.cfg.MaxAge))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (m *corsMiddleware) allowed(origin string) bool {
	for _, o := range m.cfg.AllowOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
