package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/request_models"
	"hiddengems/internal/models/response_models"
	"hiddengems/internal/repositories"
	"hiddengems/pkg/memcache"
	"hiddengems/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.Profile, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) error
	BanUser(ctx context.Context, id string, reason string, expires *time.Time) error
	UnbanUser(ctx context.Context, id string) error
}

type AccountService struct {
	userRepo    repositories.UserRepository
	resetTokens memcache.ResetTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	resetTokens memcache.ResetTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		resetTokens: resetTokens,
		logger:      logger,
	}
}

func (s *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("looking up email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("looking up username", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hashing password", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
		Role:         "user",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("creating user", zap.Error(err))
		return nil, utils.TranslateDBError(err)
	}

	return s.authResponse(user)
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		s.logger.Error("looking up account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if userIsBanned(user, time.Now()) {
		return nil, utils.ErrAccountBanned
	}

	return s.authResponse(user)
}

func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("loading profile", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	profile := mapProfile(user)
	return &profile, nil
}

// ForgotPassword issues a single-use reset token. The token is handed
// back to the caller here; delivery (mail or otherwise) sits outside
// this service.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("looking up account for reset", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrAccountNotFound
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		s.logger.Error("generating reset token", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	s.resetTokens.Set(token, user.Email, resetTokenTTL)
	return token, nil
}

func (s *AccountService) ResetPassword(ctx context.Context, token, password string) error {
	email := s.resetTokens.Consume(token)
	if email == "" {
		return utils.ValidationError("reset token is invalid or expired")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("loading account for reset", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error("hashing new password", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.logger.Error("updating password", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AccountService) BanUser(ctx context.Context, id string, reason string, expires *time.Time) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrAccountNotFound
	}
	if strings.TrimSpace(reason) == "" {
		return utils.ValidationError("ban reason is required")
	}
	if err := s.userRepo.SetBan(ctx, uid, true, reason, expires); err != nil {
		s.logger.Error("banning user", zap.String("id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AccountService) UnbanUser(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrAccountNotFound
	}
	if err := s.userRepo.SetBan(ctx, uid, false, "", nil); err != nil {
		s.logger.Error("unbanning user", zap.String("id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AccountService) authResponse(user *db_models.User) (*response_models.AuthResponse, error) {
	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("signing token", zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}
	return &response_models.AuthResponse{
		Token: token,
		User:  mapProfile(user),
	}, nil
}

// userIsBanned treats an expired ban as lifted.
func userIsBanned(user *db_models.User, now time.Time) bool {
	if !user.Banned {
		return false
	}
	if user.BanExpires != nil && now.After(*user.BanExpires) {
		return false
	}
	return true
}

func mapProfile(user *db_models.User) response_models.Profile {
	return response_models.Profile{
		ID:        user.ID.String(),
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Image:     user.Image,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
