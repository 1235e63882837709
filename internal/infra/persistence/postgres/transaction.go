// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"league/config"
	"league/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	defaultTxRetries = 3
	txRetryBaseDelay = 20 * time.Millisecond
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db         *gorm.DB
	logger     *slog.Logger
	maxRetries int
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// MemberRepo creates a member repository bound to the transaction.
func (f *gormRepositoryFactory) MemberRepo() repository.MemberRepository {
	return NewMemberRepository(f.tx)
}

// StoreRepo creates a store repository bound to the transaction.
func (f *gormRepositoryFactory) StoreRepo() repository.StoreRepository {
	return NewStoreRepository(f.tx)
}

// ReviewRepo creates a review repository bound to the transaction.
func (f *gormRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

// Locker creates an advisory locker whose locks live until the transaction ends.
func (f *gormRepositoryFactory) Locker() repository.KeyLocker {
	return newAdvisoryLocker(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config, logger *slog.Logger) repository.TransactionManager {
	maxRetries := defaultTxRetries
	if cfg != nil && cfg.Review != nil {
		maxRetries = cfg.Review.TxRetries
	}

	return &gormTransactionManager{
		db:         db,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Execute runs fn within a single database transaction. A transaction aborted by
// a serialization failure or deadlock is replayed from the start, so fn must not
// keep state across calls.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	for attempt := 0; ; attempt++ {
		err := tm.executeOnce(ctx, fn)
		if err == nil || attempt >= tm.maxRetries || !isRetryableTxError(err) {
			return err
		}

		delay := txRetryBaseDelay << attempt
		tm.logger.WarnContext(ctx, "Retrying aborted transaction",
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("transaction retry canceled: %w", err)
		case <-timer.C:
		}
	}
}

func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic, then let the panic continue.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
