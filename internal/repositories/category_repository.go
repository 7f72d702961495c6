package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hiddengems/internal/models/db_models"
)

// CategoryRepository has no delete: removing a category would orphan
// its place links, so categories are append/edit-only.
type CategoryRepository interface {
	Create(ctx context.Context, category *db_models.Category) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	GetAll(ctx context.Context) ([]db_models.Category, error)
	ResolveNames(ctx context.Context, names []string) ([]db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Category{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ResolveNames matches category names case-insensitively. Names with
// no matching row are simply absent from the result; the caller
// decides whether that is an error.
func (r *categoryRepository) ResolveNames(ctx context.Context, names []string) ([]db_models.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(name))
	}

	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", lowered).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
