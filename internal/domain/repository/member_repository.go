// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"league/internal/domain/entity"
	"league/internal/errors"

	"github.com/google/uuid"
)

// ErrMemberNotFound is returned when a member id does not resolve.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository reads members owned by the identity store.
type MemberRepository interface {
	// FindByID retrieves a single member by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
}
