package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hiddengems/internal/models/db_models"
	"hiddengems/pkg/utils"
)

type fakeCommentRepo struct {
	topLevel    []db_models.Comment
	replies     []db_models.Comment
	byID        map[uuid.UUID]*db_models.Comment
	replyCounts map[uuid.UUID]int64

	listLimit  int
	listOffset int
	created    *db_models.Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *db_models.Comment) error {
	comment.ID = uuid.New()
	f.created = comment
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	return f.byID[id], nil
}

func page(rows []db_models.Comment, offset, limit int) []db_models.Comment {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func (f *fakeCommentRepo) ListTopLevel(ctx context.Context, placeID uuid.UUID, offset, limit int) ([]db_models.Comment, error) {
	f.listOffset = offset
	f.listLimit = limit
	return page(f.topLevel, offset, limit), nil
}

func (f *fakeCommentRepo) CountTopLevel(ctx context.Context, placeID uuid.UUID) (int64, error) {
	return int64(len(f.topLevel)), nil
}

func (f *fakeCommentRepo) ListReplies(ctx context.Context, parentID uuid.UUID, offset, limit int) ([]db_models.Comment, error) {
	f.listOffset = offset
	f.listLimit = limit
	return page(f.replies, offset, limit), nil
}

func (f *fakeCommentRepo) CountReplies(ctx context.Context, parentID uuid.UUID) (int64, error) {
	return int64(len(f.replies)), nil
}

func (f *fakeCommentRepo) ReplyCounts(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return f.replyCounts, nil
}

func makeComments(placeID uuid.UUID, n int) []db_models.Comment {
	out := make([]db_models.Comment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, db_models.Comment{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			PlaceID:   placeID,
			UserID:    uuid.New(),
			Content:   "comment",
		})
	}
	return out
}

func newCommentService(commentRepo *fakeCommentRepo, placeRepo *fakePlaceRepo) CommentServiceInterface {
	return NewCommentService(commentRepo, placeRepo, zap.NewNop())
}

func TestListComments_HasMoreAtLimitBoundary(t *testing.T) {
	placeID := uuid.New()

	// 11 comments, page size 10: one row past the limit means more.
	repo := &fakeCommentRepo{topLevel: makeComments(placeID, 11)}
	svc := newCommentService(repo, &fakePlaceRepo{})

	result, err := svc.ListComments(context.Background(), placeID.String(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 11, repo.listLimit, "repo should be asked for one extra row")
	assert.Len(t, result.Comments, 10)
	assert.True(t, result.HasMore)
	assert.Equal(t, int64(11), result.TotalCount)
}

func TestListComments_NoMoreWhenPageExactlyFull(t *testing.T) {
	placeID := uuid.New()
	repo := &fakeCommentRepo{topLevel: makeComments(placeID, 10)}
	svc := newCommentService(repo, &fakePlaceRepo{})

	result, err := svc.ListComments(context.Background(), placeID.String(), 1, 10)
	require.NoError(t, err)

	assert.Len(t, result.Comments, 10)
	assert.False(t, result.HasMore)
	assert.Equal(t, int64(10), result.TotalCount)
}

func TestListComments_ZipsReplyCounts(t *testing.T) {
	placeID := uuid.New()
	comments := makeComments(placeID, 3)
	repo := &fakeCommentRepo{
		topLevel: comments,
		replyCounts: map[uuid.UUID]int64{
			comments[0].ID: 4,
			comments[2].ID: 1,
		},
	}
	svc := newCommentService(repo, &fakePlaceRepo{})

	result, err := svc.ListComments(context.Background(), placeID.String(), 1, 10)
	require.NoError(t, err)

	require.Len(t, result.Comments, 3)
	assert.Equal(t, int64(4), result.Comments[0].ReplyCount)
	assert.Equal(t, int64(0), result.Comments[1].ReplyCount)
	assert.Equal(t, int64(1), result.Comments[2].ReplyCount)
}

func TestListComments_SecondPageOffset(t *testing.T) {
	placeID := uuid.New()
	repo := &fakeCommentRepo{topLevel: makeComments(placeID, 25)}
	svc := newCommentService(repo, &fakePlaceRepo{})

	result, err := svc.ListComments(context.Background(), placeID.String(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, repo.listOffset)
	assert.Len(t, result.Comments, 10)
	assert.True(t, result.HasMore)
}

func TestListReplies_RepliesNeverCarryReplyCounts(t *testing.T) {
	parentID := uuid.New()
	placeID := uuid.New()
	repo := &fakeCommentRepo{replies: makeComments(placeID, 3)}
	svc := newCommentService(repo, &fakePlaceRepo{})

	result, err := svc.ListReplies(context.Background(), parentID.String(), 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 6, repo.listLimit)
	require.Len(t, result.Comments, 3)
	for _, c := range result.Comments {
		assert.Zero(t, c.ReplyCount)
	}
	assert.False(t, result.HasMore)
}

func TestAddComment_PlaceMustExist(t *testing.T) {
	svc := newCommentService(&fakeCommentRepo{}, &fakePlaceRepo{})

	_, err := svc.AddComment(context.Background(), uuid.NewString(), uuid.New(), "nice spot")
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestAddComment_TrimsAndStores(t *testing.T) {
	place := &db_models.Place{BaseModel: db_models.BaseModel{ID: uuid.New()}, UserID: uuid.New()}
	repo := &fakeCommentRepo{}
	svc := newCommentService(repo, &fakePlaceRepo{place: place})

	created, err := svc.AddComment(context.Background(), place.ID.String(), uuid.New(), "  great views  ")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "great views", repo.created.Content)
	assert.Nil(t, repo.created.ParentID)
}

func TestAddComment_ContentValidation(t *testing.T) {
	place := &db_models.Place{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	svc := newCommentService(&fakeCommentRepo{}, &fakePlaceRepo{place: place})

	_, err := svc.AddComment(context.Background(), place.ID.String(), uuid.New(), "   ")
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.AddComment(context.Background(), place.ID.String(), uuid.New(), strings.Repeat("a", 2001))
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAddComment_LengthCountsCharacters(t *testing.T) {
	place := &db_models.Place{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	repo := &fakeCommentRepo{}
	svc := newCommentService(repo, &fakePlaceRepo{place: place})

	// 2000 two-byte runes stay within the limit even though they exceed 2000 bytes.
	_, err := svc.AddComment(context.Background(), place.ID.String(), uuid.New(), strings.Repeat("é", 2000))
	assert.NoError(t, err)
	assert.NotNil(t, repo.created)

	_, err = svc.AddComment(context.Background(), place.ID.String(), uuid.New(), strings.Repeat("é", 2001))
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAddReply_SetsParent(t *testing.T) {
	placeID := uuid.New()
	parent := &db_models.Comment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		PlaceID:   placeID,
	}
	repo := &fakeCommentRepo{byID: map[uuid.UUID]*db_models.Comment{parent.ID: parent}}
	svc := newCommentService(repo, &fakePlaceRepo{})

	created, err := svc.AddReply(context.Background(), placeID.String(), parent.ID.String(), uuid.New(), "agreed")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, repo.created.ParentID)
	assert.Equal(t, parent.ID, *repo.created.ParentID)
}

func TestAddReply_ParentFromAnotherPlaceIsNotFound(t *testing.T) {
	parent := &db_models.Comment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		PlaceID:   uuid.New(),
	}
	repo := &fakeCommentRepo{byID: map[uuid.UUID]*db_models.Comment{parent.ID: parent}}
	svc := newCommentService(repo, &fakePlaceRepo{})

	_, err := svc.AddReply(context.Background(), uuid.NewString(), parent.ID.String(), uuid.New(), "hi")
	assert.ErrorIs(t, err, utils.ErrCommentNotFound)
}

func TestAddReply_RejectsReplyToReply(t *testing.T) {
	placeID := uuid.New()
	grandparent := uuid.New()
	parent := &db_models.Comment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		PlaceID:   placeID,
		ParentID:  &grandparent,
	}
	repo := &fakeCommentRepo{byID: map[uuid.UUID]*db_models.Comment{parent.ID: parent}}
	svc := newCommentService(repo, &fakePlaceRepo{})

	_, err := svc.AddReply(context.Background(), placeID.String(), parent.ID.String(), uuid.New(), "nested")
	assert.ErrorIs(t, err, utils.ErrReplyDepth)
}
