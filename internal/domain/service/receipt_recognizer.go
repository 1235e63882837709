package service

import (
	"context"

	"league/internal/errors"
)

// RecognitionStatusSuccess is the only status that marks a readable receipt.
const RecognitionStatusSuccess = "SUCCESS"

var (
	// ErrRecognitionUnavailable is returned when the recognition service cannot be reached or rejects the call.
	ErrRecognitionUnavailable = errors.New("receipt recognition unavailable")
	// ErrRecognitionMalformed is returned when the recognition response cannot be decoded.
	ErrRecognitionMalformed = errors.New("receipt recognition response malformed")
)

// Recognition is the structured answer of the recognition service.
type Recognition struct {
	Status       string // Raw status field, e.g. "SUCCESS" or "ERROR".
	StoreName    string
	StoreAddress string
}

// ReceiptRecognizer extracts store identity text from a receipt photo.
type ReceiptRecognizer interface {
	Recognize(ctx context.Context, image []byte) (*Recognition, error)
}
