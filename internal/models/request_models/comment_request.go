package request_models

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type CreateReplyRequest struct {
	PlaceID string `json:"place_id" binding:"required"`
	Content string `json:"content" binding:"required,max=2000"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
