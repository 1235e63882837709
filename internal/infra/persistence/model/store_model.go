package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// The (normalized_name, normalized_address) pair is unique.
type StoreModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Address           string    `gorm:"type:text;not null"`
	NormalizedName    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_stores_identity,priority:1"`
	NormalizedAddress string    `gorm:"type:text;not null;uniqueIndex:idx_stores_identity,priority:2"`
	City              string    `gorm:"type:varchar(32);not null;index"`
	Latitude          *float64  `gorm:"type:decimal(10,8)"`
	Longitude         *float64  `gorm:"type:decimal(11,8)"`
	PlaceID           string    `gorm:"type:varchar(64)"`
	Category          string    `gorm:"type:varchar(255)"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
