package http

import (
	"github.com/NeuralTrust/MaskFlow/pkg/app/ledger"
	"github.com/NeuralTrust/MaskFlow/pkg/pagination"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listActionsHandler struct {
	logger *logrus.Logger
	finder ledger.Finder
}

func NewListActionsHandler(logger *logrus.Logger, finder ledger.Finder) Handler {
	return &listActionsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List recorded actions
// @Description Returns the action ledger of an object, newest first
// @Tags Masking
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param object path string true "Object name"
// @Param page query int false "Page number"
// @Param per_page query int false "Entries per page"
// @Success 200 {object} map[string]interface{} "Paginated action ledger"
// @Router /api/v1/masking/objects/{object}/actions [get]
func (h *listActionsHandler) Handle(c *fiber.Ctx) error {
	page := pagination.New(c.QueryInt("page", 1), c.QueryInt("per_page", pagination.DefaultPerPage))
	result, err := h.finder.ListByObject(c.UserContext(), c.Params("object"), page)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
