package services

import (
	"context"
	"errors"
	"math"
	"strconv"
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

// CategoryResolution decides what happens when a requested category
// name matches no existing category: lenient drops it from the link
// set, strict fails the whole operation.
type CategoryResolution int

const (
	ResolveLenient CategoryResolution = iota
	ResolveStrict
)

type PlaceServiceInterface interface {
	ListPlaces(ctx context.Context, query request_models.ListPlacesQuery) (*response_models.PlacePage, error)
	GetPlaceByID(ctx context.Context, id string) (*response_models.PlaceDetail, error)
	GetPlaceForOwner(ctx context.Context, id string, userID uuid.UUID) (*response_models.PlaceDetail, error)
	GetPlacesByBounds(ctx context.Context, query request_models.BoundsQuery) ([]response_models.MapPlace, error)
	CreatePlace(ctx context.Context, userID uuid.UUID, req request_models.CreatePlaceRequest) (*response_models.CreatedPlace, error)
	UpdatePlace(ctx context.Context, id string, userID uuid.UUID, req request_models.UpdatePlaceRequest) error
	UpdatePlaceImages(ctx context.Context, id string, userID uuid.UUID, urls []string) error
}

type PlaceService struct {
	placeRepo    repositories.PlaceRepository
	categoryRepo repositories.CategoryRepository
	resolution   CategoryResolution
	logger       *zap.Logger
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository,
	resolution CategoryResolution,
	logger *zap.Logger,
) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:    placeRepo,
		categoryRepo: categoryRepo,
		resolution:   resolution,
		logger:       logger,
	}
}

func (s *PlaceService) ListPlaces(ctx context.Context, query request_models.ListPlacesQuery) (*response_models.PlacePage, error) {
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.PlaceFilter{
		Category: query.Category,
		Search:   query.Search,
	}

	total, err := s.placeRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("counting places", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	rows, err := s.placeRepo.List(ctx, filter, utils.Offset(query.Page, query.PageSize), query.PageSize)
	if err != nil {
		s.logger.Error("listing places", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	categories, err := s.placeRepo.CategoryNamesByPlace(ctx, ids)
	if err != nil {
		s.logger.Error("loading place categories", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.PlaceSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, MapPlaceListRow(row, categories[row.ID]))
	}

	return &response_models.PlacePage{
		Places:     summaries,
		Pagination: utils.NewPagination(query.Page, query.PageSize, total),
	}, nil
}

func (s *PlaceService) GetPlaceByID(ctx context.Context, id string) (*response_models.PlaceDetail, error) {
	placeID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrPlaceNotFound
	}

	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		s.logger.Error("fetching place", zap.String("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	detail := MapPlaceDetail(place)
	return &detail, nil
}

func (s *PlaceService) GetPlaceForOwner(ctx context.Context, id string, userID uuid.UUID) (*response_models.PlaceDetail, error) {
	placeID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrPlaceNotFound
	}

	place, err := s.placeRepo.GetByIDForOwner(ctx, placeID, userID)
	if err != nil {
		s.logger.Error("fetching owned place", zap.String("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	detail := MapPlaceDetail(place)
	return &detail, nil
}

func (s *PlaceService) GetPlacesByBounds(ctx context.Context, query request_models.BoundsQuery) ([]response_models.MapPlace, error) {
	bounds := repositories.Bounds{
		North: query.North,
		South: query.South,
		East:  query.East,
		West:  query.West,
	}
	if err := validateBounds(bounds); err != nil {
		return nil, err
	}

	rows, err := s.placeRepo.ListByBounds(ctx, bounds)
	if err != nil {
		s.logger.Error("bounds query", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	places := make([]response_models.MapPlace, 0, len(rows))
	for _, row := range rows {
		places = append(places, MapMapPlaceRow(row))
	}
	return places, nil
}

func (s *PlaceService) CreatePlace(ctx context.Context, userID uuid.UUID, req request_models.CreatePlaceRequest) (*response_models.CreatedPlace, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, utils.ValidationError("place name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, utils.ValidationError("place description is required")
	}

	lat, err := parseCoordinate(req.Latitude, "latitude", 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate(req.Longitude, "longitude", 180)
	if err != nil {
		return nil, err
	}

	categoryIDs, err := s.resolveCategoryIDs(ctx, req.Categories)
	if err != nil {
		return nil, err
	}

	// Rating starts at 0 and is only ever recomputed by the review
	// path; nothing from the request can set it.
	place := &db_models.Place{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    lat,
		Longitude:   lon,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Postcode:    req.Postcode,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Distance:    req.Distance,
		Elevation:   req.Elevation,
		BestSeason:  req.BestSeason,
		Amenities:   req.Amenities,
	}

	if err := s.placeRepo.Create(ctx, place, categoryIDs, req.Images); err != nil {
		s.logger.Error("creating place", zap.Error(err))
		return nil, utils.TranslateDBError(err)
	}

	return &response_models.CreatedPlace{ID: place.ID.String(), Name: place.Name}, nil
}

func (s *PlaceService) UpdatePlace(ctx context.Context, id string, userID uuid.UUID, req request_models.UpdatePlaceRequest) error {
	placeID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrPlaceNotFound
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return utils.ValidationError("place name cannot be empty")
		}
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return utils.ValidationError("place description cannot be empty")
		}
		fields["description"] = *req.Description
	}
	if req.Latitude != nil {
		lat, err := parseCoordinate(*req.Latitude, "latitude", 90)
		if err != nil {
			return err
		}
		fields["latitude"] = lat
	}
	if req.Longitude != nil {
		lon, err := parseCoordinate(*req.Longitude, "longitude", 180)
		if err != nil {
			return err
		}
		fields["longitude"] = lon
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.Postcode != nil {
		fields["postcode"] = *req.Postcode
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Distance != nil {
		fields["distance"] = *req.Distance
	}
	if req.Elevation != nil {
		fields["elevation"] = *req.Elevation
	}
	if req.BestSeason != nil {
		fields["best_season"] = pqArray(*req.BestSeason)
	}
	if req.Amenities != nil {
		fields["amenities"] = pqArray(*req.Amenities)
	}

	var categoryIDs *[]uuid.UUID
	if req.Categories != nil {
		ids, err := s.resolveCategoryIDs(ctx, *req.Categories)
		if err != nil {
			return err
		}
		categoryIDs = &ids
	}

	if err := s.placeRepo.Update(ctx, placeID, userID, fields, categoryIDs, req.Images); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPlaceNotFound
		}
		s.logger.Error("updating place", zap.String("id", id), zap.Error(err))
		return utils.TranslateDBError(err)
	}
	return nil
}

func (s *PlaceService) UpdatePlaceImages(ctx context.Context, id string, userID uuid.UUID, urls []string) error {
	placeID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrPlaceNotFound
	}
	if err := s.placeRepo.ReplaceImages(ctx, placeID, userID, urls); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPlaceNotFound
		}
		s.logger.Error("replacing place images", zap.String("id", id), zap.Error(err))
		return utils.TranslateDBError(err)
	}
	return nil
}

// resolveCategoryIDs matches requested names against existing
// categories case-insensitively. Under the lenient policy unmatched
// names are dropped; under strict the first unmatched name fails the
// operation.
func (s *PlaceService) resolveCategoryIDs(ctx context.Context, names []string) ([]uuid.UUID, error) {
	if len(names) == 0 {
		return nil, nil
	}

	categories, err := s.categoryRepo.ResolveNames(ctx, names)
	if err != nil {
		s.logger.Error("resolving category names", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if s.resolution == ResolveStrict {
		matched := make(map[string]bool, len(categories))
		for _, c := range categories {
			matched[strings.ToLower(c.Name)] = true
		}
		for _, name := range names {
			if !matched[strings.ToLower(name)] {
				return nil, utils.ErrUnknownCategory
			}
		}
	}

	ids := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func parseCoordinate(raw, field string, max float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, utils.ValidationError(field + " must be a number")
	}
	// ParseFloat accepts "NaN", which slips past both range checks.
	if math.IsNaN(v) {
		return 0, utils.ValidationError(field + " must be a number")
	}
	if v < -max || v > max {
		return 0, utils.ValidationError(field + " is out of range")
	}
	return v, nil
}

func validateBounds(b repositories.Bounds) error {
	if math.IsNaN(b.North) || math.IsNaN(b.South) || math.IsNaN(b.East) || math.IsNaN(b.West) {
		return utils.ErrInvalidBounds
	}
	if b.North <= b.South || b.East <= b.West {
		return utils.ErrInvalidBounds
	}
	if b.North > 90 || b.South < -90 || b.East > 180 || b.West < -180 {
		return utils.ErrInvalidBounds
	}
	return nil
}
