package http

import (
	"errors"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/lock"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ErrInvalidJsonPayload = "invalid JSON payload"
	ErrInternal           = "internal server error"
)

// handleError maps workflow errors to responses. Validation problems are
// warnings the operator can act on; nothing changed on the server.
func handleError(logger *logrus.Logger, c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.WithField("reason", validationErr.Reason).Debug(validationErr.Message)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"warning": validationErr.Message,
			"reason":  validationErr.Reason,
		})
	case domain.IsActionDisabledError(err), domain.IsSubmissionLockedError(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, lock.ErrLockTimeout):
		logger.WithError(err).Warn("lock wait timed out")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "another action is in progress, try again"})
	case domain.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case domain.IsCollaboratorTimeout(err):
		logger.WithError(err).Error("protecto timed out")
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": err.Error()})
	case domain.IsCollaboratorError(err):
		logger.WithError(err).Error("protecto call failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternal})
	}
}
