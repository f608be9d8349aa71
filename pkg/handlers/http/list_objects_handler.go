package http

import (
	"github.com/NeuralTrust/MaskFlow/pkg/app/object"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listObjectsHandler struct {
	logger    *logrus.Logger
	catalogue object.Catalogue
}

func NewListObjectsHandler(logger *logrus.Logger, catalogue object.Catalogue) Handler {
	return &listObjectsHandler{
		logger:    logger,
		catalogue: catalogue,
	}
}

// Handle @Summary List objects
// @Description Returns the objects Protecto can scan, sorted by name
// @Tags Objects
// @Param Authorization header string true "Authorization token"
// @Produce json
// @Success 200 {object} map[string]interface{} "Objects"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/objects [get]
func (h *listObjectsHandler) Handle(c *fiber.Ctx) error {
	objects, err := h.catalogue.List(c.UserContext())
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"objects": objects,
		"count":   len(objects),
	})
}
