// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member is the acting reviewer. Members are owned by the identity store and only read here.
type Member struct {
	ID        uuid.UUID // The member's unique identifier.
	Nickname  string    // Display name shown next to reviews.
	CreatedAt time.Time // Timestamp of registration.
}
