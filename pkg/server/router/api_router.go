package router

import (
	"errors"

	handlers "github.com/NeuralTrust/MaskFlow/pkg/handlers/http"
	"github.com/NeuralTrust/MaskFlow/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type apiRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	swaggerUI           bool
}

func NewAPIRouter(
	middlewareTransport middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	swaggerUI bool,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerUI:           swaggerUI,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h == nil {
		return ErrInvalidHandlerTransport
	}

	for _, m := range []middleware.Middleware{
		r.middlewareTransport.PanicRecoverMiddleware,
		r.middlewareTransport.SecurityMiddleware,
		r.middlewareTransport.CORSMiddleware,
		r.middlewareTransport.MetricsMiddleware,
	} {
		if m != nil {
			router.Use(m.Middleware())
		}
	}

	if r.swaggerUI {
		router.Get("/docs/*", swagger.HandlerDefault)
	}

	router.Get("/version", h.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		if r.middlewareTransport.AuthMiddleware != nil {
			v1.Use(r.middlewareTransport.AuthMiddleware.Middleware())
		}

		objects := v1.Group("/objects")
		{
			objects.Get("", h.ListObjectsHandler.Handle)
			objects.Post("/refresh", h.RefreshObjectsHandler.Handle)
		}

		// Scan field selection
		scan := v1.Group("/scan/sessions")
		{
			scan.Post("", h.CreateScanSessionHandler.Handle)
			scan.Get("/:session_id", h.GetScanSessionHandler.Handle)
			scan.Put("/:session_id/object", h.ChangeScanObjectHandler.Handle)
			scan.Patch("/:session_id/fields", h.SelectScanFieldsHandler.Handle)
			scan.Post("/:session_id/submit", h.SubmitScanHandler.Handle)
			scan.Post("/:session_id/reset", h.ResetScanSessionHandler.Handle)
		}

		masking := v1.Group("/masking")
		{
			masking.Get("/scheduled", h.ListScheduledHandler.Handle)
			masking.Get("/objects/:object/eligibility", h.EligibilityHandler.Handle)
			masking.Get("/objects/:object/actions", h.ListActionsHandler.Handle)

			reviews := masking.Group("/reviews")
			{
				reviews.Post("", h.OpenReviewHandler.Handle)
				reviews.Get("/:review_id", h.GetReviewHandler.Handle)
				reviews.Patch("/:review_id/records", h.EditReviewHandler.Handle)
				reviews.Post("/:review_id/exemptions", h.SaveExemptionsHandler.Handle)
				reviews.Post("/:review_id/retry", h.RetryHandler.Handle)
				reviews.Post("/:review_id/retry-all", h.RetryAllHandler.Handle)
				reviews.Post("/:review_id/approve", h.ApproveHandler.Handle)
			}
		}
	}
	return nil
}
