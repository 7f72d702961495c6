package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hiddengems/internal/models/db_models"
)

type ReviewRepository interface {
	// Create inserts the review and recomputes the owning place's
	// rating aggregate and review count in the same transaction.
	Create(ctx context.Context, review *db_models.Review) error
	ListByPlace(ctx context.Context, placeID uuid.UUID, offset, limit int) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE places SET
				rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE place_id = ?), 0),
				review_count = (SELECT COUNT(*) FROM reviews WHERE place_id = ?)
			WHERE id = ?`,
			review.PlaceID, review.PlaceID, review.PlaceID,
		).Error
	})
}

func (r *reviewRepository) ListByPlace(ctx context.Context, placeID uuid.UUID, offset, limit int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("place_id = ?", placeID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
