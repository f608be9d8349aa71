package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/request"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type editReviewHandler struct {
	logger   *logrus.Logger
	reviewer appmasking.Reviewer
}

func NewEditReviewHandler(logger *logrus.Logger, reviewer appmasking.Reviewer) Handler {
	return &editReviewHandler{
		logger:   logger,
		reviewer: reviewer,
	}
}

// Handle @Summary Edit review records
// @Description Relabels records as no_mask and checks or unchecks them for retry. A batch with any invalid edit changes nothing.
// @Tags Masking
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param review_id path string true "Review ID"
// @Param edits body request.EditRecordsRequest true "Record edits"
// @Success 200 {object} response.EditOutput "Pending changes"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 422 {object} map[string]interface{} "Unknown record, invalid status or exempt record"
// @Router /api/v1/masking/reviews/{review_id}/records [patch]
func (h *editReviewHandler) Handle(c *fiber.Ctx) error {
	var req request.EditRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.reviewer.Edit(c.UserContext(), c.Params("review_id"), req.ToRecordEdits())
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewEditOutput(result))
}
