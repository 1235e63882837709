package handler

import (
	"log/slog"
	"net/http"

	"league/internal/delivery/api/response"
	"league/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReceiptHandlerParams holds dependencies for ReceiptHandler, injected by Fx.
type ReceiptHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReceiptHandler serves receipt checks that do not create a review
type ReceiptHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReceiptHandler is the constructor for ReceiptHandler
func NewReceiptHandler(params ReceiptHandlerParams) *ReceiptHandler {
	return &ReceiptHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReceiptInfoResponse is the store identity read off a receipt
type ReceiptInfoResponse struct {
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
}

// VerifyReceipt handles recognition and the service-area check of a receipt photo
func (h *ReceiptHandler) VerifyReceipt(c echo.Context) error {
	image, err := readReceipt(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	info, err := h.reviewUC.VerifyReceipt(c.Request().Context(), image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReceiptInfoResponse{
		StoreName:    info.StoreName,
		StoreAddress: info.StoreAddress,
	})
}
