package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hiddengems/internal/models/db_models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *db_models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error)
	ListTopLevel(ctx context.Context, placeID uuid.UUID, offset, limit int) ([]db_models.Comment, error)
	CountTopLevel(ctx context.Context, placeID uuid.UUID) (int64, error)
	ListReplies(ctx context.Context, parentID uuid.UUID, offset, limit int) ([]db_models.Comment, error)
	CountReplies(ctx context.Context, parentID uuid.UUID) (int64, error)
	ReplyCounts(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListTopLevel(ctx context.Context, placeID uuid.UUID, offset, limit int) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("place_id = ? AND parent_id IS NULL", placeID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountTopLevel(ctx context.Context, placeID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Where("place_id = ? AND parent_id IS NULL", placeID).
		Count(&n).Error
	return n, err
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uuid.UUID, offset, limit int) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Where("parent_id = ?", parentID).
		Count(&n).Error
	return n, err
}

// ReplyCounts answers "how many replies does each of these comments
// have" with a single grouped query instead of one count per comment.
func (r *commentRepository) ReplyCounts(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ParentID uuid.UUID `gorm:"column:parent_id"`
		Count    int64     `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Select("parent_id, COUNT(*) AS count").
		Where("parent_id IN ?", parentIDs).
		Group("parent_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ParentID] = row.Count
	}
	return out, nil
}
