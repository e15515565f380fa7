package types

import (
	"time"

	"github.com/google/uuid"
)

// Measurement units carried over from the seeded reference data.
const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
	UnitPiece      = "piece"
)

func ValidMeasurementUnit(unit string) bool {
	switch unit {
	case UnitGram, UnitKilogram, UnitLiter, UnitMilliliter, UnitPiece:
		return true
	}
	return false
}

type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:200;not null;index:idx_ingredient_name_unit,unique,priority:1" json:"name"`
	MeasurementUnit string    `gorm:"size:10;not null;index:idx_ingredient_name_unit,unique,priority:2;column:measurement_unit" json:"measurement_unit"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (Ingredient) TableName() string { return "ingredient" }
