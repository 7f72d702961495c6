package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "hiddengems/internal/models/db_models"
)

type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountPlaces(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)

	RecentReviews(ctx context.Context, limit int) ([]RecentReviewRow, error)
	RecentPlaces(ctx context.Context, limit int) ([]RecentPlaceRow, error)
	RecentUsers(ctx context.Context, limit int) ([]RecentUserRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

type RecentReviewRow struct {
	ID        string    `gorm:"column:id"`
	PlaceName string    `gorm:"column:place_name"`
	UserName  string    `gorm:"column:user_name"`
	Rating    int       `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

type RecentPlaceRow struct {
	ID        string    `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	City      string    `gorm:"column:city"`
	Country   string    `gorm:"column:country"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

type RecentUserRow struct {
	ID        string    `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	Username  string    `gorm:"column:username"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// ---------- Counts ----------

func (r *dashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.User{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPlaces(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Place{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountReviews(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Review{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountComments(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Comment{}).Count(&n).Error
	return n, err
}

// ---------- Recent listings ----------

func (r *dashboardRepository) RecentReviews(ctx context.Context, limit int) ([]RecentReviewRow, error) {
	var rows []RecentReviewRow
	err := r.db.WithContext(ctx).
		Table("reviews r").
		Select("r.id, p.name AS place_name, u.name AS user_name, r.rating, r.comment, r.created_at").
		Joins("JOIN places p ON p.id = r.place_id").
		Joins("JOIN users u ON u.id = r.user_id").
		Order("r.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RecentPlaces(ctx context.Context, limit int) ([]RecentPlaceRow, error) {
	var rows []RecentPlaceRow
	err := r.db.WithContext(ctx).
		Table("places").
		Select("id, name, city, country, created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RecentUsers(ctx context.Context, limit int) ([]RecentUserRow, error) {
	var rows []RecentUserRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, username, email, created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
