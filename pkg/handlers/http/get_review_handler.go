package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getReviewHandler struct {
	logger   *logrus.Logger
	reviewer appmasking.Reviewer
}

func NewGetReviewHandler(logger *logrus.Logger, reviewer appmasking.Reviewer) Handler {
	return &getReviewHandler{
		logger:   logger,
		reviewer: reviewer,
	}
}

// Handle @Summary Get a masking review
// @Description Reloads the records and flags and applies the pending edits of this review
// @Tags Masking
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param review_id path string true "Review ID"
// @Success 200 {object} response.ReviewOutput "Review"
// @Failure 404 {object} map[string]interface{} "Review not found"
// @Router /api/v1/masking/reviews/{review_id} [get]
func (h *getReviewHandler) Handle(c *fiber.Ctx) error {
	review, err := h.reviewer.Get(c.UserContext(), c.Params("review_id"))
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewReviewOutput(review))
}
