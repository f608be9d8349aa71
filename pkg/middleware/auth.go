package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/NeuralTrust/MaskFlow/pkg/common"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/MaskFlow/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

// NewAuthMiddleware requires a valid operator token and stores the operator
// identity and console client on the request context for the action ledger.
func NewAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(authorizationHeader)
		if authHeader == "" {
			m.logger.Debug("no authorization header provided")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.logger.Debug("invalid authorization header format")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format"})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			m.logger.Debug("empty token provided")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Empty token provided"})
		}

		claims, err := m.jwtManager.DecodeToken(tokenString)
		if err != nil {
			m.logger.WithError(err).Debug("invalid token")
			if errors.Is(err, jwt.ErrExpiredToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token expired"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		operator := claims.Operator()
		clientAgent := utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage)).String()

		c.Locals(common.OperatorKey, operator)
		ctx := context.WithValue(c.UserContext(), common.OperatorKey, operator)
		ctx = context.WithValue(ctx, common.ClientAgentKey, clientAgent)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
