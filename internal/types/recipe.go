package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinCookingTime = 1
	MaxCookingTime = 10000
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index;column:author_id" json:"author_id"`
	Author      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	Name        string    `gorm:"size:50;not null;column:name" json:"name"`
	Text        string    `gorm:"not null;column:text" json:"text"`
	CookingTime int       `gorm:"not null;column:cooking_time" json:"cooking_time"`
	Image       string    `gorm:"not null;column:image" json:"image"`

	Tags        []*Tag              `gorm:"many2many:recipe_tag;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;references:ID" json:"ingredients,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Recipe) TableName() string { return "recipe" }
