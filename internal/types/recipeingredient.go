package types

import (
	"time"

	"github.com/google/uuid"
)

// RecipeIngredient holds the amount of one ingredient in one recipe. An
// ingredient appears at most once per recipe.
type RecipeIngredient struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID     uuid.UUID   `gorm:"type:uuid;not null;index:idx_recipe_ingredient,unique,priority:1" json:"recipe_id"`
	Recipe       *Recipe     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecipeID;references:ID" json:"recipe,omitempty"`
	IngredientID uuid.UUID   `gorm:"type:uuid;not null;index:idx_recipe_ingredient,unique,priority:2" json:"ingredient_id"`
	Ingredient   *Ingredient `gorm:"constraint:OnDelete:CASCADE;foreignKey:IngredientID;references:ID" json:"ingredient,omitempty"`
	Amount       int         `gorm:"not null;column:amount" json:"amount"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredient" }
