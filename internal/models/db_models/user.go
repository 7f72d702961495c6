package db_models

import "time"

type User struct {
	BaseModel
	Name          string
	Email         string `gorm:"unique;not null"`
	EmailVerified bool
	Username      string `gorm:"unique"`
	Image         string
	Role          string `gorm:"default:user"`
	PasswordHash  string
	Banned        bool
	BanReason     string
	BanExpires    *time.Time

	Places   []Place
	Reviews  []Review
	Comments []Comment
}
