package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/request_models"
	"hiddengems/pkg/utils"
)

type fakeReviewRepo struct {
	created *db_models.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *db_models.Review) error {
	f.created = review
	return nil
}

func (f *fakeReviewRepo) ListByPlace(ctx context.Context, placeID uuid.UUID, offset, limit int) ([]db_models.Review, error) {
	return nil, nil
}

func TestAddReview_RatingBounds(t *testing.T) {
	place := &db_models.Place{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	svc := NewReviewService(&fakeReviewRepo{}, &fakePlaceRepo{place: place}, zap.NewNop())

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddReview(context.Background(), place.ID.String(), uuid.New(), request_models.CreateReviewRequest{Rating: rating})
		assert.ErrorIs(t, err, utils.ErrValidation, "rating %d", rating)
	}
}

func TestAddReview_PlaceMustExist(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, &fakePlaceRepo{}, zap.NewNop())

	_, err := svc.AddReview(context.Background(), uuid.NewString(), uuid.New(), request_models.CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestAddReview_CreatesReview(t *testing.T) {
	place := &db_models.Place{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, &fakePlaceRepo{place: place}, zap.NewNop())

	userID := uuid.New()
	id, err := svc.AddReview(context.Background(), place.ID.String(), userID, request_models.CreateReviewRequest{
		Rating:  5,
		Comment: "stunning",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, place.ID, repo.created.PlaceID)
	assert.Equal(t, userID, repo.created.UserID)
	assert.Equal(t, 5, repo.created.Rating)
	assert.Equal(t, "stunning", repo.created.Comment)
}
