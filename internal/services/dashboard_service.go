package services

import (
	"context"

	"go.uber.org/zap"

	resp "hiddengems/internal/models/response_models"
	"hiddengems/internal/repositories"
	"hiddengems/pkg/utils"
)

const recentLimit = 10

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*resp.DashboardStats, error)
	GetRecentActivity(ctx context.Context) (*resp.RecentActivity, error)
}

type DashboardService struct {
	repo   repositories.DashboardRepository
	logger *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{repo: repo, logger: logger}
}

func (s *DashboardService) GetStats(ctx context.Context) (*resp.DashboardStats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		s.logger.Error("counting users", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	places, err := s.repo.CountPlaces(ctx)
	if err != nil {
		s.logger.Error("counting places", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	reviews, err := s.repo.CountReviews(ctx)
	if err != nil {
		s.logger.Error("counting reviews", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	comments, err := s.repo.CountComments(ctx)
	if err != nil {
		s.logger.Error("counting comments", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &resp.DashboardStats{
		TotalUsers:    users,
		TotalPlaces:   places,
		TotalReviews:  reviews,
		TotalComments: comments,
	}, nil
}

func (s *DashboardService) GetRecentActivity(ctx context.Context) (*resp.RecentActivity, error) {
	reviewRows, err := s.repo.RecentReviews(ctx, recentLimit)
	if err != nil {
		s.logger.Error("recent reviews", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	placeRows, err := s.repo.RecentPlaces(ctx, recentLimit)
	if err != nil {
		s.logger.Error("recent places", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	userRows, err := s.repo.RecentUsers(ctx, recentLimit)
	if err != nil {
		s.logger.Error("recent users", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	activity := &resp.RecentActivity{
		Reviews: make([]resp.RecentReview, 0, len(reviewRows)),
		Places:  make([]resp.RecentPlace, 0, len(placeRows)),
		Users:   make([]resp.RecentUser, 0, len(userRows)),
	}
	for _, r := range reviewRows {
		activity.Reviews = append(activity.Reviews, resp.RecentReview{
			ID:        r.ID,
			PlaceName: r.PlaceName,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, p := range placeRows {
		activity.Places = append(activity.Places, resp.RecentPlace{
			ID:        p.ID,
			Name:      p.Name,
			City:      p.City,
			Country:   p.Country,
			CreatedAt: p.CreatedAt,
		})
	}
	for _, u := range userRows {
		activity.Users = append(activity.Users, resp.RecentUser{
			ID:        u.ID,
			Name:      u.Name,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}
	return activity, nil
}
