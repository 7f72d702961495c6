package request_models

// Latitude/Longitude arrive as strings from form-driven clients and are
// coerced to float64 in the service layer.
type CreatePlaceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Latitude    string   `json:"latitude" binding:"required"`
	Longitude   string   `json:"longitude" binding:"required"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Postcode    string   `json:"postcode"`
	Difficulty  *string  `json:"difficulty" binding:"omitempty,oneof=easy moderate hard expert"`
	Duration    string   `json:"duration"`
	Distance    string   `json:"distance"`
	Elevation   string   `json:"elevation"`
	BestSeason  []string `json:"best_season"`
	Amenities   []string `json:"amenities"`
	Categories  []string `json:"categories"`
	Images      []string `json:"images"`
}

// UpdatePlaceRequest is a partial update. Categories and Images are
// full replacements when present; a nil Images leaves the existing set
// untouched while an empty slice removes every image.
type UpdatePlaceRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Latitude    *string   `json:"latitude"`
	Longitude   *string   `json:"longitude"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	Country     *string   `json:"country"`
	Postcode    *string   `json:"postcode"`
	Difficulty  *string   `json:"difficulty" binding:"omitempty,oneof=easy moderate hard expert"`
	Duration    *string   `json:"duration"`
	Distance    *string   `json:"distance"`
	Elevation   *string   `json:"elevation"`
	BestSeason  *[]string `json:"best_season"`
	Amenities   *[]string `json:"amenities"`
	Categories  *[]string `json:"categories"`
	Images      *[]string `json:"images"`
}

type UpdatePlaceImagesRequest struct {
	Images []string `json:"images" binding:"required"`
}

type ListPlacesQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"pageSize,default=12" binding:"min=1,max=100"`
}

type BoundsQuery struct {
	North float64 `form:"north" binding:"required"`
	South float64 `form:"south" binding:"required"`
	East  float64 `form:"east" binding:"required"`
	West  float64 `form:"west" binding:"required"`
}
