package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxContentLength = 1000
)

// Validation errors for user-authored review fields.
var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrContentEmpty     = errors.New("review content is empty")
	ErrContentTooLong   = errors.New("review content exceeds 1000 characters")
)

// ReviewContent holds the user-authored part of a review.
type ReviewContent struct {
	Content  string
	Rating   int
	ImageURL string // Optional reference to an externally stored image.
	Season   string // Season label, filled in at admission time.
}

// Validate checks the user-authored fields. Season is not checked.
func (c ReviewContent) Validate() error {
	if c.Rating < MinRating || c.Rating > MaxRating {
		return ErrRatingOutOfRange
	}

	trimmed := strings.TrimSpace(c.Content)
	if trimmed == "" {
		return ErrContentEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxContentLength {
		return ErrContentTooLong
	}

	return nil
}

// Review is a member's persisted feedback on one store for one season.
// At most one non-deleted review exists per (member, store, season).
type Review struct {
	ID       uuid.UUID
	MemberID uuid.UUID
	StoreID  uuid.UUID
	ReviewContent
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Set once the review is soft-deleted; never cleared.
}

// NewReview builds an unsaved review for the given season.
func NewReview(memberID, storeID uuid.UUID, content ReviewContent, season Season, now time.Time) *Review {
	content.Content = strings.TrimSpace(content.Content)
	content.ImageURL = strings.TrimSpace(content.ImageURL)
	content.Season = season.String()

	return &Review{
		ID:            uuid.Must(uuid.NewV7()),
		MemberID:      memberID,
		StoreID:       storeID,
		ReviewContent: content,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsDeleted reports whether the review has been soft-deleted.
func (r *Review) IsDeleted() bool {
	return r.DeletedAt != nil
}

// SoftDelete marks the review deleted at now. It returns false without
// touching the review if it was already deleted.
func (r *Review) SoftDelete(now time.Time) bool {
	if r.IsDeleted() {
		return false
	}
	r.DeletedAt = &now
	r.UpdatedAt = now

	return true
}

// ReviewLockKey is the advisory lock key guarding the duplicate check for a triple.
func ReviewLockKey(memberID, storeID uuid.UUID, season Season) string {
	return "review:" + memberID.String() + "|" + storeID.String() + "|" + season.String()
}

// DuplicateVerdict is the outcome of a duplicate review check.
type DuplicateVerdict int

const (
	VerdictAllowed DuplicateVerdict = iota
	VerdictDuplicate
)

func (v DuplicateVerdict) String() string {
	if v == VerdictDuplicate {
		return "duplicate"
	}

	return "allowed"
}

// ReviewFilter narrows a review listing. At most one of MemberID and StoreID is set.
type ReviewFilter struct {
	MemberID *uuid.UUID
	StoreID  *uuid.UUID
	Limit    int
	Offset   int
}
