package postgres

import (
	"context"

	"league/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// advisoryLocker takes transaction-scoped Postgres advisory locks.
// Locks are released by commit or rollback, never explicitly.
type advisoryLocker struct {
	tx *gorm.DB
}

func newAdvisoryLocker(tx *gorm.DB) repository.KeyLocker {
	return &advisoryLocker{tx: tx}
}

// Lock blocks until the lock for key is granted or ctx is done.
func (l *advisoryLocker) Lock(ctx context.Context, key string) error {
	if err := l.tx.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
		return errors.Wrapf(err, "failed to acquire advisory lock %q", key)
	}

	return nil
}
