package http

import (
	"github.com/NeuralTrust/MaskFlow/pkg/app/object"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type refreshObjectsHandler struct {
	logger    *logrus.Logger
	catalogue object.Catalogue
}

func NewRefreshObjectsHandler(logger *logrus.Logger, catalogue object.Catalogue) Handler {
	return &refreshObjectsHandler{
		logger:    logger,
		catalogue: catalogue,
	}
}

// Handle @Summary Refresh the object catalogue
// @Description Drops the cached object list on every replica
// @Tags Objects
// @Param Authorization header string true "Authorization token"
// @Produce json
// @Success 202 {object} map[string]interface{} "Refresh requested"
// @Router /api/v1/objects/refresh [post]
func (h *refreshObjectsHandler) Handle(c *fiber.Ctx) error {
	if err := h.catalogue.Refresh(c.UserContext()); err != nil {
		return handleError(h.logger, c, err)
	}
	h.logger.Info("object catalogue refresh requested")
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "object catalogue refresh requested"})
}
