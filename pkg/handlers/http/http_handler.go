package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	GetVersionHandler Handler

	// Objects
	ListObjectsHandler    Handler
	RefreshObjectsHandler Handler

	// Scan
	CreateScanSessionHandler Handler
	GetScanSessionHandler    Handler
	ChangeScanObjectHandler  Handler
	SelectScanFieldsHandler  Handler
	SubmitScanHandler        Handler
	ResetScanSessionHandler  Handler

	// Masking review
	ListScheduledHandler  Handler
	OpenReviewHandler     Handler
	GetReviewHandler      Handler
	EditReviewHandler     Handler
	SaveExemptionsHandler Handler
	RetryHandler          Handler
	RetryAllHandler       Handler
	ApproveHandler        Handler
	EligibilityHandler    Handler
	ListActionsHandler    Handler
}
