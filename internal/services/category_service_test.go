package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/request_models"
	"hiddengems/pkg/utils"
)

func newCategoryService(repo *fakeCategoryRepo) CategoryServiceInterface {
	return NewCategoryService(repo, zap.NewNop())
}

func TestCreateCategory_RequiresNameAndIcon(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{})

	_, err := svc.CreateCategory(context.Background(), request_models.CreateCategoryRequest{Icon: "tree"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.CreateCategory(context.Background(), request_models.CreateCategoryRequest{Name: "Hiking"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateCategory_TrimsName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := newCategoryService(repo)

	created, err := svc.CreateCategory(context.Background(), request_models.CreateCategoryRequest{
		Name: "  Hiking  ",
		Icon: "tree",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hiking", created.Name)
	assert.Equal(t, "Hiking", repo.created.Name)
	assert.NotEmpty(t, created.ID)
}

func TestUpdateCategory_NothingToUpdate(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{})

	_, err := svc.UpdateCategory(context.Background(), uuid.NewString(), request_models.UpdateCategoryRequest{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestUpdateCategory_ImageClearVsKeep(t *testing.T) {
	existing := db_models.Category{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Hiking",
		Icon:      "tree",
		Image:     "https://cdn.example.com/hiking.jpg",
	}
	repo := &fakeCategoryRepo{categories: []db_models.Category{existing}}
	svc := newCategoryService(repo)

	// A nil Image pointer keeps the stored value untouched.
	name := "Trekking"
	_, err := svc.UpdateCategory(context.Background(), existing.ID.String(), request_models.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	_, imageTouched := repo.updatedFields["image"]
	assert.False(t, imageTouched)

	// An empty string clears it.
	empty := ""
	_, err = svc.UpdateCategory(context.Background(), existing.ID.String(), request_models.UpdateCategoryRequest{Image: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", repo.updatedFields["image"])
}

func TestUpdateCategory_NotFound(t *testing.T) {
	repo := &fakeCategoryRepo{updateErr: gorm.ErrRecordNotFound}
	svc := newCategoryService(repo)

	name := "Hiking"
	_, err := svc.UpdateCategory(context.Background(), uuid.NewString(), request_models.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)

	_, err = svc.UpdateCategory(context.Background(), "not-a-uuid", request_models.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestGetCategories(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []db_models.Category{
		newCategory("Hiking"),
		newCategory("Camping"),
	}}
	svc := newCategoryService(repo)

	out, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Hiking", out[0].Name)
	assert.Equal(t, "Camping", out[1].Name)
}
