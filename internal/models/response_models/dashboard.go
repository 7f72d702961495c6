package response_models

import "time"

type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalPlaces   int64 `json:"total_places"`
	TotalReviews  int64 `json:"total_reviews"`
	TotalComments int64 `json:"total_comments"`
}

type RecentReview struct {
	ID        string    `json:"id"`
	PlaceName string    `json:"place_name"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentPlace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentActivity struct {
	Reviews []RecentReview `json:"reviews"`
	Places  []RecentPlace  `json:"places"`
	Users   []RecentUser   `json:"users"`
}
