package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/request"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type retryHandler struct {
	logger  *logrus.Logger
	actions appmasking.Actions
	all     bool
}

// NewRetryHandler retries the checked records, or every record when the body
// sets all.
func NewRetryHandler(logger *logrus.Logger, actions appmasking.Actions) Handler {
	return &retryHandler{
		logger:  logger,
		actions: actions,
	}
}

// NewRetryAllHandler always retries every record of the object.
func NewRetryAllHandler(logger *logrus.Logger, actions appmasking.Actions) Handler {
	return &retryHandler{
		logger:  logger,
		actions: actions,
		all:     true,
	}
}

// Handle @Summary Retry masking
// @Description Retries the records checked for retry, or all records when all is set. Requires retry to be enabled.
// @Tags Masking
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param review_id path string true "Review ID"
// @Param retry body request.RetryRequest false "Retry mode"
// @Success 200 {object} response.ActionOutput "Retry requested"
// @Failure 409 {object} map[string]interface{} "Retry is not enabled"
// @Failure 422 {object} map[string]interface{} "No records selected"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/masking/reviews/{review_id}/retry [post]
// @Router /api/v1/masking/reviews/{review_id}/retry-all [post]
func (h *retryHandler) Handle(c *fiber.Ctx) error {
	all := h.all
	if !all && len(c.Body()) > 0 {
		var req request.RetryRequest
		if err := c.BodyParser(&req); err != nil {
			h.logger.WithError(err).Error("failed to bind request")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
		}
		all = req.All
	}

	result, err := h.actions.Retry(c.UserContext(), c.Params("review_id"), all)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewActionOutput(result))
}
