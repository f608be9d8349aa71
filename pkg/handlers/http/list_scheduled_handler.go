package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listScheduledHandler struct {
	logger   *logrus.Logger
	reviewer appmasking.Reviewer
}

func NewListScheduledHandler(logger *logrus.Logger, reviewer appmasking.Reviewer) Handler {
	return &listScheduledHandler{
		logger:   logger,
		reviewer: reviewer,
	}
}

// Handle @Summary List objects scheduled for masking
// @Tags Masking
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Success 200 {object} map[string]interface{} "Scheduled objects with their queries"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/masking/scheduled [get]
func (h *listScheduledHandler) Handle(c *fiber.Ctx) error {
	scheduled, err := h.reviewer.ListScheduled(c.UserContext())
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"scheduled": scheduled,
		"count":     len(scheduled),
	})
}
