package postgres

import (
	"context"

	"league/internal/domain/entity"
	domainerrors "league/internal/domain/errors"
	"league/internal/domain/repository"
	"league/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Omit("Member", "Store").Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid member or store reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by ID, soft-deleted ones included.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// CountActiveByMemberStoreSeason counts live reviews for the triple on the primary.
func (repo *reviewRepository) CountActiveByMemberStoreSeason(ctx context.Context, memberID, storeID uuid.UUID, season string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ReviewModel{}).
		Where("member_id = ? AND store_id = ? AND season = ?", memberID, storeID, season).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews by member, store and season")
	}

	return count, nil
}

// CountActiveByStoreSeason counts live reviews of a store within a season.
func (repo *reviewRepository) CountActiveByStoreSeason(ctx context.Context, storeID uuid.UUID, season string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("store_id = ? AND season = ?", storeID, season).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews by store and season")
	}

	return count, nil
}

// SoftDelete stamps deleted_at on a live review.
func (repo *reviewRepository) SoftDelete(ctx context.Context, review *entity.Review) error {
	if review.DeletedAt == nil {
		return errors.New("review has no deletion timestamp")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND deleted_at IS NULL", review.ID).
		Updates(map[string]any{
			"deleted_at": *review.DeletedAt,
			"updated_at": review.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// List returns live reviews matching the filter, newest first.
func (repo *reviewRepository) List(ctx context.Context, filter entity.ReviewFilter) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{})
	if filter.MemberID != nil {
		query = query.Where("member_id = ?", *filter.MemberID)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:       data.ID,
		MemberID: data.MemberID,
		StoreID:  data.StoreID,
		ReviewContent: entity.ReviewContent{
			Content:  data.Content,
			Rating:   data.Rating,
			ImageURL: data.ImageURL,
			Season:   data.Season,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		review.DeletedAt = &deletedAt
	}

	return review
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	reviewM := &model.ReviewModel{
		ID:        data.ID,
		MemberID:  data.MemberID,
		StoreID:   data.StoreID,
		Season:    data.Season,
		Rating:    data.Rating,
		Content:   data.Content,
		ImageURL:  data.ImageURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.DeletedAt != nil {
		reviewM.DeletedAt = gorm.DeletedAt{Time: *data.DeletedAt, Valid: true}
	}

	return reviewM
}
