package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Place struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Latitude    float64   `gorm:"index"`
	Longitude   float64   `gorm:"index"`
	Address     string
	City        string
	State       string
	Country     string
	Postcode    string

	// Rating and ReviewCount are recomputed from reviews, never
	// written through place create/update.
	Rating      float64 `gorm:"default:0"`
	ReviewCount int     `gorm:"default:0"`

	Difficulty *string
	Duration   string
	Distance   string
	Elevation  string
	BestSeason pq.StringArray `gorm:"type:text[]"`
	Amenities  pq.StringArray `gorm:"type:text[]"`
	IsFeatured bool

	Categories []Category   `gorm:"many2many:place_categories;constraint:OnDelete:CASCADE"`
	Images     []PlaceImage `gorm:"constraint:OnDelete:CASCADE"`
	Reviews    []Review     `gorm:"constraint:OnDelete:CASCADE"`
	Comments   []Comment    `gorm:"constraint:OnDelete:CASCADE"`
}

const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
	DifficultyExpert   = "expert"
)
