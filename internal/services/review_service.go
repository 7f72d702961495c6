package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/request_models"
	"hiddengems/internal/repositories"
	"hiddengems/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, placeID string, userID uuid.UUID, req request_models.CreateReviewRequest) (string, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	placeRepo  repositories.PlaceRepository
	logger     *zap.Logger
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		placeRepo:  placeRepo,
		logger:     logger,
	}
}

func (s *ReviewService) AddReview(ctx context.Context, placeID string, userID uuid.UUID, req request_models.CreateReviewRequest) (string, error) {
	pid, err := uuid.Parse(placeID)
	if err != nil {
		return "", utils.ErrPlaceNotFound
	}
	if req.Rating < 1 || req.Rating > 5 {
		return "", utils.ValidationError("rating must be between 1 and 5")
	}

	place, err := s.placeRepo.GetByID(ctx, pid)
	if err != nil {
		s.logger.Error("fetching place for review", zap.String("place_id", placeID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if place == nil {
		return "", utils.ErrPlaceNotFound
	}

	review := &db_models.Review{
		ID:      uuid.New(),
		PlaceID: pid,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.Error("creating review", zap.String("place_id", placeID), zap.Error(err))
		return "", utils.TranslateDBError(err)
	}
	return review.ID.String(), nil
}
