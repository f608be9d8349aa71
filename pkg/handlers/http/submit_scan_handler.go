package http

import (
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type submitScanHandler struct {
	logger   *logrus.Logger
	workflow appscan.Workflow
}

func NewSubmitScanHandler(logger *logrus.Logger, workflow appscan.Workflow) Handler {
	return &submitScanHandler{
		logger:   logger,
		workflow: workflow,
	}
}

// Handle @Summary Submit the selected fields
// @Description Saves the field selection and starts the scan. Each happens at most once until the session is reset.
// @Tags Scan
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param session_id path string true "Scan session ID"
// @Success 200 {object} response.SubmitScanOutput "Submission result"
// @Failure 409 {object} map[string]interface{} "Already submitted"
// @Failure 422 {object} map[string]interface{} "No fields selected"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/scan/sessions/{session_id}/submit [post]
func (h *submitScanHandler) Handle(c *fiber.Ctx) error {
	result, err := h.workflow.Submit(c.UserContext(), c.Params("session_id"))
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewSubmitScanOutput(result))
}
