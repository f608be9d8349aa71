package http

import (
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type eligibilityHandler struct {
	logger      *logrus.Logger
	eligibility appmasking.EligibilityChecker
}

func NewEligibilityHandler(logger *logrus.Logger, eligibility appmasking.EligibilityChecker) Handler {
	return &eligibilityHandler{
		logger:      logger,
		eligibility: eligibility,
	}
}

// Handle @Summary Get retry and approve flags
// @Tags Masking
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param object path string true "Object name"
// @Success 200 {object} map[string]interface{} "Flags and the controls they enable"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/masking/objects/{object}/eligibility [get]
func (h *eligibilityHandler) Handle(c *fiber.Ctx) error {
	object := c.Params("object")
	eligibility, err := h.eligibility.Check(c.UserContext(), object)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"object":      object,
		"eligibility": eligibility,
		"controls":    eligibility.Controls(),
	})
}
