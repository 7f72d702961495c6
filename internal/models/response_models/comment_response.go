package response_models

import "time"

type CommentAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Comment struct {
	ID         string        `json:"id"`
	PlaceID    string        `json:"place_id"`
	ParentID   *string       `json:"parent_id,omitempty"`
	Content    string        `json:"content"`
	Author     CommentAuthor `json:"author"`
	ReplyCount int64         `json:"reply_count"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type CommentPage struct {
	Comments   []Comment `json:"comments"`
	HasMore    bool      `json:"has_more"`
	TotalCount int64     `json:"total_count"`
}

type CreatedComment struct {
	ID string `json:"id"`
}
