package db_models

// Category is the admin-managed classification table. There is no
// delete path for categories, only create and edit.
type Category struct {
	BaseModel
	Name   string `gorm:"unique;not null"`
	Icon   string `gorm:"not null"`
	Image  string
	Places []Place `gorm:"many2many:place_categories"`
}
