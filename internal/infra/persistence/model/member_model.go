package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel mirrors the 'members' table owned by the identity service.
// This service only reads it.
type MemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Nickname  string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
