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

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindByIdentity returns stores matching both normalized keys, oldest first.
// It always reads from the primary so a store created moments ago is visible.
func (repo *storeRepository) FindByIdentity(ctx context.Context, identity entity.StoreIdentity) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("normalized_name = ? AND normalized_address = ?", identity.Name, identity.Address).
		Order("created_at ASC").
		Order("id ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by identity")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStore
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrStoreCreationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	store := &entity.Store{
		ID:                data.ID,
		Name:              data.Name,
		Address:           data.Address,
		NormalizedName:    data.NormalizedName,
		NormalizedAddress: data.NormalizedAddress,
		City:              data.City,
		PlaceID:           data.PlaceID,
		Category:          data.Category,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		store.Geo = &entity.GeoPoint{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return store
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	storeM := &model.StoreModel{
		ID:                data.ID,
		Name:              data.Name,
		Address:           data.Address,
		NormalizedName:    data.NormalizedName,
		NormalizedAddress: data.NormalizedAddress,
		City:              data.City,
		PlaceID:           data.PlaceID,
		Category:          data.Category,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Geo != nil {
		lat, lng := data.Geo.Latitude, data.Geo.Longitude
		storeM.Latitude = &lat
		storeM.Longitude = &lng
	}

	return storeM
}
