package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/request"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type openReviewHandler struct {
	logger   *logrus.Logger
	reviewer appmasking.Reviewer
}

func NewOpenReviewHandler(logger *logrus.Logger, reviewer appmasking.Reviewer) Handler {
	return &openReviewHandler{
		logger:   logger,
		reviewer: reviewer,
	}
}

// Handle @Summary Open a masking review
// @Description Loads the records scheduled for masking on an object with the current retry and approve flags
// @Tags Masking
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param review body request.OpenReviewRequest true "Object to review"
// @Success 201 {object} response.ReviewOutput "Review"
// @Failure 422 {object} map[string]interface{} "No object, object not scheduled or no records"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/masking/reviews [post]
func (h *openReviewHandler) Handle(c *fiber.Ctx) error {
	var req request.OpenReviewRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	review, err := h.reviewer.Open(c.UserContext(), req.Object)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response.NewReviewOutput(review))
}
