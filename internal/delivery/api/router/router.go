// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"league/config"
	"league/internal/delivery/api/router/handler"
	"league/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReviewHandler  *handler.ReviewHandler
	ReceiptHandler *handler.ReceiptHandler
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	reviewHandler  *handler.ReviewHandler
	receiptHandler *handler.ReceiptHandler
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reviewHandler:  params.ReviewHandler,
		receiptHandler: params.ReceiptHandler,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Member-scoped review routes
	membersGroup := apiV1.Group("/members/:memberId")
	{
		membersGroup.POST("/reviews", r.reviewHandler.SubmitReview)
		membersGroup.GET("/reviews", r.reviewHandler.ListMemberReviews)
	}

	// Store-scoped review routes
	storesGroup := apiV1.Group("/stores/:storeId")
	{
		storesGroup.GET("/reviews", r.reviewHandler.ListStoreReviews)
		storesGroup.GET("/season-summary", r.reviewHandler.GetStoreSeasonSummary)
	}

	// Review routes
	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	// Receipt routes
	receiptsGroup := apiV1.Group("/receipts")
	{
		receiptsGroup.POST("/verify", r.receiptHandler.VerifyReceipt)
	}
}
