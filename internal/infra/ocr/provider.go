package ocr

import (
	"log/slog"

	"league/config"
	"league/internal/domain/service"
	"league/internal/infra/metrics"

	"go.uber.org/fx"
)

// RecognizerParams holds dependencies for ReceiptRecognizer, injected by Fx
type RecognizerParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewRecognizer builds the configured receipt recognizer
func NewRecognizer(params RecognizerParams) (service.ReceiptRecognizer, error) {
	return NewClovaRecognizer(params.Config.Receipt, params.Metrics, params.Logger)
}

// Module provides the receipt recognition FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRecognizer),
)
