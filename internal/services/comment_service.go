package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/response_models"
	"hiddengems/internal/repositories"
	"hiddengems/pkg/utils"
)

const maxCommentLength = 2000

type CommentServiceInterface interface {
	ListComments(ctx context.Context, placeID string, page, pageSize int) (*response_models.CommentPage, error)
	ListReplies(ctx context.Context, parentID string, page, pageSize int) (*response_models.CommentPage, error)
	AddComment(ctx context.Context, placeID string, userID uuid.UUID, content string) (*response_models.CreatedComment, error)
	AddReply(ctx context.Context, placeID, parentID string, userID uuid.UUID, content string) (*response_models.CreatedComment, error)
}

type CommentService struct {
	commentRepo repositories.CommentRepository
	placeRepo   repositories.PlaceRepository
	logger      *zap.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) CommentServiceInterface {
	return &CommentService{
		commentRepo: commentRepo,
		placeRepo:   placeRepo,
		logger:      logger,
	}
}

// ListComments pages top-level comments newest first. hasMore comes
// from fetching one row past the limit instead of a second count
// round trip; the total still needs its own count for the header the
// UI renders.
func (s *CommentService) ListComments(ctx context.Context, placeID string, page, pageSize int) (*response_models.CommentPage, error) {
	pid, err := uuid.Parse(placeID)
	if err != nil {
		return nil, utils.ErrPlaceNotFound
	}
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListTopLevel(ctx, pid, utils.Offset(page, pageSize), pageSize+1)
	if err != nil {
		s.logger.Error("listing comments", zap.String("place_id", placeID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	hasMore := len(comments) > pageSize
	if hasMore {
		comments = comments[:pageSize]
	}

	ids := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	replyCounts, err := s.commentRepo.ReplyCounts(ctx, ids)
	if err != nil {
		s.logger.Error("counting replies", zap.String("place_id", placeID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	total, err := s.commentRepo.CountTopLevel(ctx, pid)
	if err != nil {
		s.logger.Error("counting comments", zap.String("place_id", placeID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.Comment, 0, len(comments))
	for _, c := range comments {
		views = append(views, mapComment(c, replyCounts[c.ID]))
	}

	return &response_models.CommentPage{
		Comments:   views,
		HasMore:    hasMore,
		TotalCount: total,
	}, nil
}

func (s *CommentService) ListReplies(ctx context.Context, parentID string, page, pageSize int) (*response_models.CommentPage, error) {
	pid, err := uuid.Parse(parentID)
	if err != nil {
		return nil, utils.ErrCommentNotFound
	}
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	replies, err := s.commentRepo.ListReplies(ctx, pid, utils.Offset(page, pageSize), pageSize+1)
	if err != nil {
		s.logger.Error("listing replies", zap.String("parent_id", parentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	hasMore := len(replies) > pageSize
	if hasMore {
		replies = replies[:pageSize]
	}

	total, err := s.commentRepo.CountReplies(ctx, pid)
	if err != nil {
		s.logger.Error("counting replies", zap.String("parent_id", parentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.Comment, 0, len(replies))
	for _, c := range replies {
		// Replies cannot have replies, their count is always 0.
		views = append(views, mapComment(c, 0))
	}

	return &response_models.CommentPage{
		Comments:   views,
		HasMore:    hasMore,
		TotalCount: total,
	}, nil
}

func (s *CommentService) AddComment(ctx context.Context, placeID string, userID uuid.UUID, content string) (*response_models.CreatedComment, error) {
	pid, err := uuid.Parse(placeID)
	if err != nil {
		return nil, utils.ErrPlaceNotFound
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	place, err := s.placeRepo.GetByID(ctx, pid)
	if err != nil {
		s.logger.Error("fetching place for comment", zap.String("place_id", placeID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	comment := &db_models.Comment{
		PlaceID: pid,
		UserID:  userID,
		Content: strings.TrimSpace(content),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("creating comment", zap.String("place_id", placeID), zap.Error(err))
		return nil, utils.TranslateDBError(err)
	}
	return &response_models.CreatedComment{ID: comment.ID.String()}, nil
}

// AddReply enforces the one-level threading contract at the data
// boundary: the parent must exist, belong to the same place, and be a
// top-level comment itself.
func (s *CommentService) AddReply(ctx context.Context, placeID, parentID string, userID uuid.UUID, content string) (*response_models.CreatedComment, error) {
	pid, err := uuid.Parse(placeID)
	if err != nil {
		return nil, utils.ErrPlaceNotFound
	}
	parent, err := uuid.Parse(parentID)
	if err != nil {
		return nil, utils.ErrCommentNotFound
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	parentComment, err := s.commentRepo.GetByID(ctx, parent)
	if err != nil {
		s.logger.Error("fetching parent comment", zap.String("parent_id", parentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if parentComment == nil || parentComment.PlaceID != pid {
		return nil, utils.ErrCommentNotFound
	}
	if parentComment.ParentID != nil {
		return nil, utils.ErrReplyDepth
	}

	reply := &db_models.Comment{
		PlaceID:  pid,
		UserID:   userID,
		ParentID: &parent,
		Content:  strings.TrimSpace(content),
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		s.logger.Error("creating reply", zap.String("parent_id", parentID), zap.Error(err))
		return nil, utils.TranslateDBError(err)
	}
	return &response_models.CreatedComment{ID: reply.ID.String()}, nil
}

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func validateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return utils.ValidationError("comment cannot be empty")
	}
	// Count runes, not bytes: the column holds varchar(2000) characters.
	if utf8.RuneCountInString(trimmed) > maxCommentLength {
		return utils.ValidationError("comment exceeds 2000 characters")
	}
	return nil
}

func mapComment(c db_models.Comment, replyCount int64) response_models.Comment {
	var parentID *string
	if c.ParentID != nil {
		s := c.ParentID.String()
		parentID = &s
	}
	return response_models.Comment{
		ID:       c.ID.String(),
		PlaceID:  c.PlaceID.String(),
		ParentID: parentID,
		Content:  c.Content,
		Author: response_models.CommentAuthor{
			ID:    c.User.ID.String(),
			Name:  c.User.Name,
			Image: c.User.Image,
		},
		ReplyCount: replyCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
