package repository

import (
	"context"

	"league/internal/domain/entity"
	"league/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStore is returned when a store with the same normalized identity already exists.
	ErrDuplicateStore = errors.New("store already exists")
)

// StoreRepository defines store persistence operations.
type StoreRepository interface {
	// FindByIdentity returns every store whose normalized name and address both
	// equal the identity, oldest first (created_at, then id).
	FindByIdentity(ctx context.Context, identity entity.StoreIdentity) ([]*entity.Store, error)

	// FindByID retrieves a store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// Create persists a new store. A uniqueness violation yields ErrDuplicateStore.
	Create(ctx context.Context, store *entity.Store) error
}
