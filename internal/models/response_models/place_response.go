package response_models

import (
	"time"

	"hiddengems/pkg/utils"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	Postcode  string  `json:"postcode,omitempty"`
}

type PlaceSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    Location  `json:"location"`
	Categories  []string  `json:"categories"`
	FirstImage  *string   `json:"first_image"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Difficulty  *string   `json:"difficulty"`
	Duration    string    `json:"duration,omitempty"`
	Distance    string    `json:"distance,omitempty"`
	Elevation   string    `json:"elevation,omitempty"`
	BestSeason  []string  `json:"best_season,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type PlaceImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type PlaceDetail struct {
	PlaceSummary
	Amenities []string     `json:"amenities,omitempty"`
	Images    []PlaceImage `json:"images"`
	OwnerID   string       `json:"owner_id"`
}

type PlacePage struct {
	Places     []PlaceSummary   `json:"places"`
	Pagination utils.Pagination `json:"pagination"`
}

// MapPlace is the trimmed projection returned by the bounding-box
// query; the map view never needs the full detail payload.
type MapPlace struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Difficulty  *string `json:"difficulty"`
	Distance    string  `json:"distance,omitempty"`
	IsFeatured  bool    `json:"is_featured"`
	FirstImage  *string `json:"first_image"`
}

type CreatedPlace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
