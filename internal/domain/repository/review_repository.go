package repository

import (
	"context"

	"league/internal/domain/entity"
	"league/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when an active review already exists for the (member, store, season) triple.
	ErrDuplicateReview = errors.New("review already exists for season")
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	// Create persists a new review. A uniqueness violation yields ErrDuplicateReview.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by ID, soft-deleted ones included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// CountActiveByMemberStoreSeason counts non-deleted reviews for the triple.
	CountActiveByMemberStoreSeason(ctx context.Context, memberID, storeID uuid.UUID, season string) (int64, error)

	// CountActiveByStoreSeason counts non-deleted reviews of a store within a season.
	CountActiveByStoreSeason(ctx context.Context, storeID uuid.UUID, season string) (int64, error)

	// SoftDelete stamps deleted_at on a live review. ErrReviewNotFound if no live row matched.
	SoftDelete(ctx context.Context, review *entity.Review) error

	// List returns non-deleted reviews matching the filter, newest first (created_at DESC, id DESC).
	List(ctx context.Context, filter entity.ReviewFilter) ([]*entity.Review, error)
}
