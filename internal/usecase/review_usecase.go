package usecase

import (
	"context"

	"league/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreSeasonSummary reports how many live reviews a store has in the current season.
type StoreSeasonSummary struct {
	StoreID uuid.UUID
	Season  string
	Count   int64
}

// ReviewPage is one page of a review listing with the paging actually applied.
type ReviewPage struct {
	Reviews []*entity.Review
	Limit   int
	Offset  int
}

// ReviewUsecase defines the review admission and lifecycle use cases
type ReviewUsecase interface {
	// SubmitReview admits a receipt-backed review for the member in the current season.
	// Rejections: ErrMemberNotFound, ErrReceiptInvalid, ErrUnsupportedArea,
	// ErrStoreCreationFailed, ErrDuplicateReview.
	SubmitReview(ctx context.Context, memberID uuid.UUID, receiptImage []byte, content entity.ReviewContent) (*entity.Review, error)

	// DeleteReview soft-deletes a review. Deleting an already-deleted review succeeds without a write.
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error

	// GetReview returns a live review
	GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)

	// ListReviews returns live reviews newest first, optionally narrowed to one member or store
	ListReviews(ctx context.Context, filter entity.ReviewFilter) (*ReviewPage, error)

	// VerifyReceipt runs receipt recognition and the boundary check without persisting anything
	VerifyReceipt(ctx context.Context, receiptImage []byte) (*entity.ReceiptInfo, error)

	// GetStoreSeasonSummary counts a store's live reviews in the current season
	GetStoreSeasonSummary(ctx context.Context, storeID uuid.UUID) (*StoreSeasonSummary, error)
}
