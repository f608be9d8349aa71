package http

import (
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getScanSessionHandler struct {
	logger   *logrus.Logger
	workflow appscan.Workflow
}

func NewGetScanSessionHandler(logger *logrus.Logger, workflow appscan.Workflow) Handler {
	return &getScanSessionHandler{
		logger:   logger,
		workflow: workflow,
	}
}

// Handle @Summary Get a scan session
// @Description Returns the session and one page of its fields. Out of range pages are clamped.
// @Tags Scan
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param session_id path string true "Scan session ID"
// @Param page query int false "Field page, keeps the current page when omitted"
// @Success 200 {object} response.ScanSessionOutput "Scan session"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /api/v1/scan/sessions/{session_id} [get]
func (h *getScanSessionHandler) Handle(c *fiber.Ctx) error {
	view, err := h.workflow.Get(c.UserContext(), c.Params("session_id"), c.QueryInt("page", 0))
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewScanSessionOutput(view))
}
