package http

import (
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/request"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type selectScanFieldsHandler struct {
	logger   *logrus.Logger
	workflow appscan.Workflow
}

func NewSelectScanFieldsHandler(logger *logrus.Logger, workflow appscan.Workflow) Handler {
	return &selectScanFieldsHandler{
		logger:   logger,
		workflow: workflow,
	}
}

// Handle @Summary Select fields to scan
// @Description Marks fields as selected or not. Refused once a submission has started.
// @Tags Scan
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param session_id path string true "Scan session ID"
// @Param selections body request.SelectFieldsRequest true "Field selections"
// @Success 200 {object} response.ScanSessionOutput "Scan session"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Session already submitted"
// @Failure 422 {object} map[string]interface{} "Unknown field"
// @Router /api/v1/scan/sessions/{session_id}/fields [patch]
func (h *selectScanFieldsHandler) Handle(c *fiber.Ctx) error {
	var req request.SelectFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.workflow.SelectFields(c.UserContext(), c.Params("session_id"), req.Selections, req.Page)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NewScanSessionOutput(view))
}
