package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/request_models"
	"hiddengems/internal/models/response_models"
	"hiddengems/internal/repositories"
	"hiddengems/pkg/utils"
)

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context) ([]response_models.Category, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.Category, error)
	UpdateCategory(ctx context.Context, id string, req request_models.UpdateCategoryRequest) (*response_models.Category, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]response_models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("listing categories", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, mapCategory(c))
	}
	return out, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, utils.ValidationError("category name is required")
	}
	if strings.TrimSpace(req.Icon) == "" {
		return nil, utils.ValidationError("category icon is required")
	}

	category := &db_models.Category{
		Name:  strings.TrimSpace(req.Name),
		Icon:  req.Icon,
		Image: req.Image,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("creating category", zap.Error(err))
		return nil, utils.TranslateDBError(err)
	}

	view := mapCategory(*category)
	return &view, nil
}

// UpdateCategory edits name/icon/image in place. Image follows the
// clear-vs-keep convention: a nil pointer keeps the current value, an
// empty string clears it.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req request_models.UpdateCategoryRequest) (*response_models.Category, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrCategoryNotFound
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, utils.ValidationError("category name cannot be empty")
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Icon != nil {
		if strings.TrimSpace(*req.Icon) == "" {
			return nil, utils.ValidationError("category icon cannot be empty")
		}
		fields["icon"] = *req.Icon
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		return nil, utils.ValidationError("nothing to update")
	}

	if err := s.categoryRepo.Update(ctx, cid, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrCategoryNotFound
		}
		s.logger.Error("updating category", zap.String("id", id), zap.Error(err))
		return nil, utils.TranslateDBError(err)
	}

	updated, err := s.categoryRepo.GetByID(ctx, cid)
	if err != nil {
		s.logger.Error("reloading category", zap.String("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrCategoryNotFound
	}

	view := mapCategory(*updated)
	return &view, nil
}

func mapCategory(c db_models.Category) response_models.Category {
	return response_models.Category{
		ID:    c.ID.String(),
		Name:  c.Name,
		Icon:  c.Icon,
		Image: c.Image,
	}
}
