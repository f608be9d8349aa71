package http

import (
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type resetScanSessionHandler struct {
	logger   *logrus.Logger
	workflow appscan.Workflow
}

func NewResetScanSessionHandler(logger *logrus.Logger, workflow appscan.Workflow) Handler {
	return &resetScanSessionHandler{
		logger:   logger,
		workflow: workflow,
	}
}

// Handle @Summary Reset a scan session
// @Description Reloads the fields and returns the session to idle so it can be submitted again
// @Tags Scan
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param session_id path string true "Scan session ID"
// @Success 200 {object} response.ScanSessionOutput "Scan session"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /api/v1/scan/sessions/{session_id}/reset [post]
func (h *resetScanSessionHandler) Handle(c *fiber.Ctx) error {
	view, err := h.workflow.Reset(c.UserContext(), c.Params("session_id"))
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewScanSessionOutput(view))
}
