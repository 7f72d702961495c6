package db_models

import "github.com/google/uuid"

// PlaceCategory is the explicit join table behind the many2many
// association, modeled so link rows can be replaced wholesale on
// place updates.
type PlaceCategory struct {
	PlaceID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (PlaceCategory) TableName() string { return "place_categories" }
