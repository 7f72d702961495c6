package db_models

import "github.com/google/uuid"

type PlaceImage struct {
	BaseModel
	PlaceID uuid.UUID `gorm:"type:uuid;index;not null"`
	URL     string    `gorm:"not null"`
	Alt     string
}
