package repository

import "context"

// KeyLocker serializes work on a logical key across processes.
// A lock taken through a transaction-bound locker is held until that transaction ends.
type KeyLocker interface {
	Lock(ctx context.Context, key string) error
}
