package types

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:20;not null;column:name" json:"name"`
	Color     string    `gorm:"size:7;not null;column:color" json:"color"`
	Slug      string    `gorm:"size:50;uniqueIndex;not null;column:slug" json:"slug"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Tag) TableName() string { return "tag" }
