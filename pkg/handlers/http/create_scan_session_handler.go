package http

import (
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/request"
	"github.com/NeuralTrust/MaskFlow/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createScanSessionHandler struct {
	logger   *logrus.Logger
	workflow appscan.Workflow
}

func NewCreateScanSessionHandler(logger *logrus.Logger, workflow appscan.Workflow) Handler {
	return &createScanSessionHandler{
		logger:   logger,
		workflow: workflow,
	}
}

// Handle @Summary Open a scan session
// @Description Loads the fields of an object and starts a scan session. The object defaults to User.
// @Tags Scan
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param session body request.CreateScanSessionRequest false "Object to scan"
// @Success 201 {object} response.ScanSessionOutput "Scan session"
// @Failure 422 {object} map[string]interface{} "Unknown or missing object"
// @Failure 502 {object} map[string]interface{} "Protecto unavailable"
// @Router /api/v1/scan/sessions [post]
func (h *createScanSessionHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateScanSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			h.logger.WithError(err).Error("failed to bind request")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
		}
	}

	view, err := h.workflow.Start(c.UserContext(), req.Object)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response.NewScanSessionOutput(view))
}
