package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wayfare/internal/models/db_models"
)

type PlaceRepository interface {
	FindByCity(ctx context.Context, city string) ([]db_models.Place, error)
	FindByCityPartial(ctx context.Context, cityFragment string, limit int) ([]db_models.Place, error)
	FindByCountry(ctx context.Context, country string, limit int) ([]db_models.Place, error)
	FindByIDs(ctx context.Context, placeIDs []string) ([]db_models.Place, error)
	FindOneByNameInCity(ctx context.Context, city, name string, fuzzy bool) (*db_models.Place, error)
	SearchPlaces(ctx context.Context, city, category, name, country string, limit int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// rankedScope applies the selection order shared by all candidate queries:
// better-rated places first, then the more popular (lower rank).
func rankedScope(db *gorm.DB) *gorm.DB {
	return db.Order("rating DESC").Order("popularity ASC")
}

func (r *placeRepository) FindByCity(ctx context.Context, city string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := rankedScope(r.db.WithContext(ctx)).
		Where("LOWER(city) = LOWER(?)", city).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindByCityPartial(ctx context.Context, cityFragment string, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := rankedScope(r.db.WithContext(ctx)).
		Where("city ILIKE ?", "%"+cityFragment+"%").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindByCountry(ctx context.Context, country string, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := rankedScope(r.db.WithContext(ctx)).
		Where("country ILIKE ?", "%"+country+"%").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindByIDs(ctx context.Context, placeIDs []string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("place_id IN ?", placeIDs).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

// FindOneByNameInCity resolves a place by display name. With fuzzy set the
// name only has to appear as a substring. Not found is (nil, nil).
func (r *placeRepository) FindOneByNameInCity(ctx context.Context, city, name string, fuzzy bool) (*db_models.Place, error) {
	var place db_models.Place
	q := r.db.WithContext(ctx).Where("LOWER(city) = LOWER(?)", city)
	if fuzzy {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	} else {
		q = q.Where("LOWER(name) = LOWER(?)", name)
	}
	err := q.First(&place).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) SearchPlaces(ctx context.Context, city, category, name, country string, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	q := rankedScope(r.db.WithContext(ctx)).
		Where("LOWER(city) = LOWER(?)", city)
	if category != "" {
		q = q.Where("LOWER(category) = LOWER(?) OR LOWER(wayfare_category) = LOWER(?)", category, category)
	}
	if name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if country != "" {
		q = q.Where("LOWER(country) = LOWER(?)", country)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}
