package impl

import (
	"context"
	"strings"
	"time"

	"league/internal/domain/entity"
	"league/internal/domain/service"
	"league/internal/errors"
)

// ReceiptVerifier turns a recognition call into a typed ReceiptResult.
type ReceiptVerifier struct {
	recognizer service.ReceiptRecognizer
	timeout    time.Duration
}

// NewReceiptVerifier bounds every recognition call by timeout. A non-positive
// timeout leaves the caller's deadline as the only bound.
func NewReceiptVerifier(recognizer service.ReceiptRecognizer, timeout time.Duration) *ReceiptVerifier {
	return &ReceiptVerifier{
		recognizer: recognizer,
		timeout:    timeout,
	}
}

// Verify classifies the receipt. Every recognition outcome, including a
// timeout, becomes a ReceiptResult; the error is non-nil only when the caller's
// own context ended first.
func (v *ReceiptVerifier) Verify(ctx context.Context, image []byte) (*entity.ReceiptResult, error) {
	if len(image) == 0 {
		return entity.ReceiptFailed(entity.ReceiptEmptyImage, "no image bytes"), nil
	}

	callCtx := ctx
	if v.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	recognition, err := v.recognizer.Recognize(callCtx, image)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		return classifyRecognitionError(err), nil
	}

	if recognition == nil {
		return entity.ReceiptFailed(entity.ReceiptMalformed, "empty recognition"), nil
	}
	if recognition.Status != service.RecognitionStatusSuccess {
		return entity.ReceiptFailed(entity.ReceiptNotRecognized, "status "+recognition.Status), nil
	}

	info := entity.ReceiptInfo{
		StoreName:    strings.TrimSpace(recognition.StoreName),
		StoreAddress: strings.TrimSpace(recognition.StoreAddress),
	}
	if info.StoreName == "" || info.StoreAddress == "" {
		return entity.ReceiptFailed(entity.ReceiptIncomplete, "store name or address missing"), nil
	}

	return entity.ReceiptSucceeded(info), nil
}

func classifyRecognitionError(err error) *entity.ReceiptResult {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return entity.ReceiptFailed(entity.ReceiptTimeout, err.Error())
	case errors.Is(err, service.ErrRecognitionMalformed):
		return entity.ReceiptFailed(entity.ReceiptMalformed, err.Error())
	default:
		return entity.ReceiptFailed(entity.ReceiptUnavailable, err.Error())
	}
}
