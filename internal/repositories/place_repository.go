package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hiddengems/internal/models/db_models"
)

// firstImageSubquery picks one image per place in a single round trip.
// No ORDER BY: which image wins when a place has several is an
// arbitrary tie-break.
const firstImageSubquery = "(SELECT url FROM place_images WHERE place_images.place_id = places.id LIMIT 1) AS first_image"

// PlaceFilter is the shared predicate for the listing query and its
// companion count query. Category "" or "all" means no category
// filter; an empty search string means no text filter.
type PlaceFilter struct {
	Category string
	Search   string
}

// Bounds is a rectangular lat/lon viewport. West must be less than
// east; viewports wrapping the ±180° meridian are not supported.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

type PlaceListRow struct {
	db_models.Place
	FirstImage *string `gorm:"column:first_image"`
}

type MapPlaceRow struct {
	ID          uuid.UUID
	Name        string
	Latitude    float64
	Longitude   float64
	City        string
	State       string
	Rating      float64
	ReviewCount int
	Difficulty  *string
	Distance    string
	IsFeatured  bool
	FirstImage  *string `gorm:"column:first_image"`
}

type PlaceRepository interface {
	List(ctx context.Context, filter PlaceFilter, offset, limit int) ([]PlaceListRow, error)
	Count(ctx context.Context, filter PlaceFilter) (int64, error)
	CategoryNamesByPlace(ctx context.Context, placeIDs []uuid.UUID) (map[uuid.UUID][]string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error)
	GetByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*db_models.Place, error)
	ListByBounds(ctx context.Context, b Bounds) ([]MapPlaceRow, error)
	Create(ctx context.Context, place *db_models.Place, categoryIDs []uuid.UUID, imageURLs []string) error
	Update(ctx context.Context, id, userID uuid.UUID, fields map[string]interface{}, categoryIDs *[]uuid.UUID, imageURLs *[]string) error
	ReplaceImages(ctx context.Context, id, userID uuid.UUID, imageURLs []string) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func applyPlaceFilter(db *gorm.DB, filter PlaceFilter) *gorm.DB {
	if filter.Category != "" && filter.Category != "all" {
		db = db.Where(
			"places.id IN (SELECT pc.place_id FROM place_categories pc JOIN categories c ON c.id = pc.category_id WHERE LOWER(c.name) = LOWER(?))",
			filter.Category,
		)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where(
			"(places.name ILIKE ? OR places.description ILIKE ? OR places.city ILIKE ? OR places.state ILIKE ? OR places.country ILIKE ?)",
			like, like, like, like, like,
		)
	}
	return db
}

// List and Count run as separate queries outside a shared snapshot;
// under concurrent writes the total and the page can drift apart.
func (r *placeRepository) List(ctx context.Context, filter PlaceFilter, offset, limit int) ([]PlaceListRow, error) {
	var rows []PlaceListRow
	db := r.db.WithContext(ctx).Model(&db_models.Place{}).
		Select("places.*, " + firstImageSubquery)
	db = applyPlaceFilter(db, filter)
	err := db.
		Order("places.rating DESC, places.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *placeRepository) Count(ctx context.Context, filter PlaceFilter) (int64, error) {
	var n int64
	db := r.db.WithContext(ctx).Model(&db_models.Place{})
	db = applyPlaceFilter(db, filter)
	err := db.Count(&n).Error
	return n, err
}

// CategoryNamesByPlace collects category names for a page of places in
// one grouped query, zipped back by place id in the service layer.
func (r *placeRepository) CategoryNamesByPlace(ctx context.Context, placeIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(placeIDs))
	if len(placeIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		PlaceID uuid.UUID `gorm:"column:place_id"`
		Name    string    `gorm:"column:name"`
	}
	err := r.db.WithContext(ctx).
		Table("place_categories pc").
		Select("pc.place_id, c.name").
		Joins("JOIN categories c ON c.id = pc.category_id").
		Where("pc.place_id IN ?", placeIDs).
		Order("c.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.PlaceID] = append(out[row.PlaceID], row.Name)
	}
	return out, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Images").
		First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) GetByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Images").
		First(&place, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

// ListByBounds is deliberately unpaginated; callers bound the result
// size through the viewport itself.
func (r *placeRepository) ListByBounds(ctx context.Context, b Bounds) ([]MapPlaceRow, error) {
	var rows []MapPlaceRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Place{}).
		Select("places.id, places.name, places.latitude, places.longitude, places.city, places.state, places.rating, places.review_count, places.difficulty, places.distance, places.is_featured, "+firstImageSubquery).
		Where("places.latitude BETWEEN ? AND ?", b.South, b.North).
		Where("places.longitude BETWEEN ? AND ?", b.West, b.East).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.Place, categoryIDs []uuid.UUID, imageURLs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Images").Create(place).Error; err != nil {
			return err
		}
		if err := insertCategoryLinks(tx, place.ID, categoryIDs); err != nil {
			return err
		}
		return insertImages(tx, place.ID, imageURLs)
	})
}

// Update applies the field map under an owner-scoped predicate, then
// replaces the category links and the image set when either is
// supplied. A nil categoryIDs/imageURLs leaves the existing rows
// untouched; an empty slice deletes them all.
func (r *placeRepository) Update(ctx context.Context, id, userID uuid.UUID, fields map[string]interface{}, categoryIDs *[]uuid.UUID, imageURLs *[]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			result := tx.Model(&db_models.Place{}).
				Where("id = ? AND user_id = ?", id, userID).
				Updates(fields)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		} else {
			var n int64
			if err := tx.Model(&db_models.Place{}).
				Where("id = ? AND user_id = ?", id, userID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if categoryIDs != nil {
			if err := tx.Where("place_id = ?", id).Delete(&db_models.PlaceCategory{}).Error; err != nil {
				return err
			}
			if err := insertCategoryLinks(tx, id, *categoryIDs); err != nil {
				return err
			}
		}

		if imageURLs != nil {
			if err := tx.Where("place_id = ?", id).Delete(&db_models.PlaceImage{}).Error; err != nil {
				return err
			}
			if err := insertImages(tx, id, *imageURLs); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *placeRepository) ReplaceImages(ctx context.Context, id, userID uuid.UUID, imageURLs []string) error {
	urls := imageURLs
	return r.Update(ctx, id, userID, nil, nil, &urls)
}

func insertCategoryLinks(tx *gorm.DB, placeID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]db_models.PlaceCategory, 0, len(categoryIDs))
	for _, cid := range categoryIDs {
		links = append(links, db_models.PlaceCategory{PlaceID: placeID, CategoryID: cid})
	}
	return tx.Create(&links).Error
}

func insertImages(tx *gorm.DB, placeID uuid.UUID, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	images := make([]db_models.PlaceImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, db_models.PlaceImage{PlaceID: placeID, URL: url})
	}
	return tx.Create(&images).Error
}
