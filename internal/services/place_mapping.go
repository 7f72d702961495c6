package services

import (
	"github.com/lib/pq"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/response_models"
	"hiddengems/internal/repositories"
)

// One explicit mapping function per raw row shape, kept free of any
// database access so each can be tested in isolation.

func MapPlaceListRow(row repositories.PlaceListRow, categories []string) response_models.PlaceSummary {
	if categories == nil {
		categories = []string{}
	}
	return response_models.PlaceSummary{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		Location: response_models.Location{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Address:   row.Address,
			City:      row.City,
			State:     row.State,
			Country:   row.Country,
			Postcode:  row.Postcode,
		},
		Categories:  categories,
		FirstImage:  row.FirstImage,
		Rating:      row.Rating,
		ReviewCount: row.ReviewCount,
		Difficulty:  row.Difficulty,
		Duration:    row.Duration,
		Distance:    row.Distance,
		Elevation:   row.Elevation,
		BestSeason:  row.BestSeason,
		IsFeatured:  row.IsFeatured,
		CreatedAt:   row.CreatedAt,
	}
}

func MapPlaceDetail(place *db_models.Place) response_models.PlaceDetail {
	categories := make([]string, 0, len(place.Categories))
	for _, c := range place.Categories {
		categories = append(categories, c.Name)
	}

	images := make([]response_models.PlaceImage, 0, len(place.Images))
	for _, img := range place.Images {
		images = append(images, response_models.PlaceImage{
			ID:  img.ID.String(),
			URL: img.URL,
			Alt: img.Alt,
		})
	}

	var firstImage *string
	if len(place.Images) > 0 {
		url := place.Images[0].URL
		firstImage = &url
	}

	return response_models.PlaceDetail{
		PlaceSummary: response_models.PlaceSummary{
			ID:          place.ID.String(),
			Name:        place.Name,
			Description: place.Description,
			Location: response_models.Location{
				Latitude:  place.Latitude,
				Longitude: place.Longitude,
				Address:   place.Address,
				City:      place.City,
				State:     place.State,
				Country:   place.Country,
				Postcode:  place.Postcode,
			},
			Categories:  categories,
			FirstImage:  firstImage,
			Rating:      place.Rating,
			ReviewCount: place.ReviewCount,
			Difficulty:  place.Difficulty,
			Duration:    place.Duration,
			Distance:    place.Distance,
			Elevation:   place.Elevation,
			BestSeason:  place.BestSeason,
			IsFeatured:  place.IsFeatured,
			CreatedAt:   place.CreatedAt,
		},
		Amenities: place.Amenities,
		Images:    images,
		OwnerID:   place.UserID.String(),
	}
}

func MapMapPlaceRow(row repositories.MapPlaceRow) response_models.MapPlace {
	return response_models.MapPlace{
		ID:          row.ID.String(),
		Name:        row.Name,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		City:        row.City,
		State:       row.State,
		Rating:      row.Rating,
		ReviewCount: row.ReviewCount,
		Difficulty:  row.Difficulty,
		Distance:    row.Distance,
		IsFeatured:  row.IsFeatured,
		FirstImage:  row.FirstImage,
	}
}

func pqArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}
