package request_models

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon" binding:"required"`
	Image string `json:"image"`
}

// UpdateCategoryRequest fields are optional; for Image a nil pointer
// leaves the current value, an empty string clears it.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Image *string `json:"image"`
}
