package types

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a "follower follows author" row. follower != author is
// enforced at write time, the pair uniqueness at the storage layer.
type Subscription struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;index:idx_follower_author,unique,priority:1" json:"follower_id"`
	Follower   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:FollowerID;references:ID" json:"follower,omitempty"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index:idx_follower_author,unique,priority:2" json:"author_id"`
	Author     *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:AuthorID;references:ID" json:"author,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscription" }
