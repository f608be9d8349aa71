package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type approveHandler struct {
	logger  *logrus.Logger
	actions appmasking.Actions
}

func NewApproveHandler(logger *logrus.Logger, actions appmasking.Actions) Handler {
	return &approveHandler{
		logger:  logger,
		actions: actions,
	}
}

// Handle @Summary Approve masking
// @Description Approves the masking batch of the review's object. Requires approve to be enabled.
// @Tags Masking
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param review_id path string true "Review ID"
// @Success 200 {object} response.ActionOutput "Approved"
// @Failure 409 {object} map[string]interface{} "Approve is not enabled"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/masking/reviews/{review_id}/approve [post]
func (h *approveHandler) Handle(c *fiber.Ctx) error {
	result, err := h.actions.Approve(c.UserContext(), c.Params("review_id"))
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewActionOutput(result))
}
