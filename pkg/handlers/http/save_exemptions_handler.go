package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type saveExemptionsHandler struct {
	logger  *logrus.Logger
	actions appmasking.Actions
}

func NewSaveExemptionsHandler(logger *logrus.Logger, actions appmasking.Actions) Handler {
	return &saveExemptionsHandler{
		logger:  logger,
		actions: actions,
	}
}

// Handle @Summary Save exemptions
// @Description Sends the records relabelled no_mask in this review to Protecto
// @Tags Masking
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param review_id path string true "Review ID"
// @Success 200 {object} response.ActionOutput "Exemptions saved"
// @Failure 422 {object} map[string]interface{} "No records marked for no_mask"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/masking/reviews/{review_id}/exemptions [post]
func (h *saveExemptionsHandler) Handle(c *fiber.Ctx) error {
	result, err := h.actions.SaveExemptions(c.UserContext(), c.Params("review_id"))
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewActionOutput(result))
}
