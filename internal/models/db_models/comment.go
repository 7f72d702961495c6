package db_models

import "github.com/google/uuid"

// Comment rows with a nil ParentID are top-level; a non-nil ParentID
// marks a reply. The schema would allow deeper chains, the service
// layer rejects replies to replies.
type Comment struct {
	BaseModel
	PlaceID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	UserID   uuid.UUID  `gorm:"type:uuid;not null"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	Content  string     `gorm:"type:varchar(2000);not null"`

	User   User
	Parent *Comment `gorm:"constraint:OnDelete:CASCADE"`
}
