package types

import (
	"time"

	"github.com/google/uuid"
)

// MarkKind distinguishes the two user-to-recipe relations, which share the
// same shape and the same uniqueness rule.
type MarkKind string

const (
	MarkFavorite MarkKind = "favorite"
	MarkCart     MarkKind = "cart"
)

// UserRecipeMark is an existence-only marker: at most one row per
// (user, recipe, kind).
type UserRecipeMark struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_recipe_kind,unique,priority:1" json:"user_id"`
	User     *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index:idx_user_recipe_kind,unique,priority:2" json:"recipe_id"`
	Recipe   *Recipe   `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecipeID;references:ID" json:"recipe,omitempty"`
	Kind     MarkKind  `gorm:"size:16;not null;index:idx_user_recipe_kind,unique,priority:3;column:kind" json:"kind"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserRecipeMark) TableName() string { return "user_recipe_mark" }
