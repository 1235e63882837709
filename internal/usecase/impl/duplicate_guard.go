package impl

import (
	"context"

	"league/internal/domain/entity"
	"league/internal/domain/repository"
	"league/internal/errors"

	"github.com/google/uuid"
)

// DuplicateGuard enforces one live review per member, store and season.
type DuplicateGuard struct{}

// NewDuplicateGuard creates a DuplicateGuard.
func NewDuplicateGuard() *DuplicateGuard {
	return &DuplicateGuard{}
}

// Check locks the triple for the rest of the transaction and reports whether
// a live review already exists for it.
func (g *DuplicateGuard) Check(ctx context.Context, repos repository.RepositoryFactory, memberID, storeID uuid.UUID, season entity.Season) (entity.DuplicateVerdict, error) {
	if err := repos.Locker().Lock(ctx, entity.ReviewLockKey(memberID, storeID, season)); err != nil {
		return entity.VerdictAllowed, errors.Wrap(err, "failed to lock review triple")
	}

	count, err := repos.ReviewRepo().CountActiveByMemberStoreSeason(ctx, memberID, storeID, season.String())
	if err != nil {
		return entity.VerdictAllowed, errors.Wrap(err, "failed to count reviews for season")
	}
	if count > 0 {
		return entity.VerdictDuplicate, nil
	}

	return entity.VerdictAllowed, nil
}
