package http

import (
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/request"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type changeScanObjectHandler struct {
	logger   *logrus.Logger
	workflow appscan.Workflow
}

func NewChangeScanObjectHandler(logger *logrus.Logger, workflow appscan.Workflow) Handler {
	return &changeScanObjectHandler{
		logger:   logger,
		workflow: workflow,
	}
}

// Handle @Summary Change the object of a scan session
// @Description Reloads the fields for the new object and resets the session to idle
// @Tags Scan
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param session_id path string true "Scan session ID"
// @Param object body request.ChangeScanObjectRequest true "New object"
// @Success 200 {object} response.ScanSessionOutput "Scan session"
// @Failure 409 {object} map[string]interface{} "Submission in progress"
// @Failure 422 {object} map[string]interface{} "Unknown or missing object"
// @Router /api/v1/scan/sessions/{session_id}/object [put]
func (h *changeScanObjectHandler) Handle(c *fiber.Ctx) error {
	var req request.ChangeScanObjectRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	view, err := h.workflow.ChangeObject(c.UserContext(), c.Params("session_id"), req.Object)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewScanSessionOutput(view))
}
