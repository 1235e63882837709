package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Only one live row may exist per (member_id, store_id, season); soft-deleted rows are kept.
type ReviewModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MemberID  uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_active_triple,priority:1,where:deleted_at IS NULL"`
	StoreID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_reviews_store_season,priority:1;uniqueIndex:idx_reviews_active_triple,priority:2,where:deleted_at IS NULL"`
	Season    string         `gorm:"type:varchar(16);not null;index:idx_reviews_store_season,priority:2;uniqueIndex:idx_reviews_active_triple,priority:3,where:deleted_at IS NULL"`
	Rating    int            `gorm:"type:smallint;not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Content   string         `gorm:"type:text;not null"`
	ImageURL  string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"not null;index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Member *MemberModel `gorm:"foreignKey:MemberID"`
	Store  *StoreModel  `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
