package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/repositories"
)

func TestMapPlaceDetail(t *testing.T) {
	owner := uuid.New()
	place := &db_models.Place{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		UserID:      owner,
		Name:        "Hidden Falls",
		Description: "A quiet waterfall",
		Latitude:    47.6,
		Longitude:   -122.3,
		Categories: []db_models.Category{
			{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Hiking"},
		},
		Images: []db_models.PlaceImage{
			{BaseModel: db_models.BaseModel{ID: uuid.New()}, URL: "https://cdn.example.com/a.jpg", Alt: "falls"},
			{BaseModel: db_models.BaseModel{ID: uuid.New()}, URL: "https://cdn.example.com/b.jpg"},
		},
	}

	detail := MapPlaceDetail(place)

	assert.Equal(t, place.ID.String(), detail.ID)
	assert.Equal(t, owner.String(), detail.OwnerID)
	assert.Equal(t, []string{"Hiking"}, detail.Categories)
	assert.Len(t, detail.Images, 2)
	assert.NotNil(t, detail.FirstImage)
	assert.Equal(t, "https://cdn.example.com/a.jpg", *detail.FirstImage)
}

func TestMapPlaceDetail_NoImages(t *testing.T) {
	place := &db_models.Place{BaseModel: db_models.BaseModel{ID: uuid.New()}}

	detail := MapPlaceDetail(place)

	assert.Nil(t, detail.FirstImage)
	assert.NotNil(t, detail.Images)
	assert.Empty(t, detail.Images)
	assert.NotNil(t, detail.Categories)
}

func TestMapPlaceListRow_NilCategoriesBecomeEmpty(t *testing.T) {
	row := repositories.PlaceListRow{
		Place: db_models.Place{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Ridge"},
	}

	summary := MapPlaceListRow(row, nil)

	assert.NotNil(t, summary.Categories)
	assert.Empty(t, summary.Categories)
}
