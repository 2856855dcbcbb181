package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wayfare/internal/models/db_models"
)

type CityRepository interface {
	FindByName(ctx context.Context, name string) (*db_models.City, error)
	ListAll(ctx context.Context) ([]db_models.City, error)
	ListByCountry(ctx context.Context, country string) ([]db_models.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) FindByName(ctx context.Context, name string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) ListAll(ctx context.Context) ([]db_models.City, error) {
	var cities []db_models.City
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) ListByCountry(ctx context.Context, country string) ([]db_models.City, error) {
	var cities []db_models.City
	err := r.db.WithContext(ctx).
		Where("LOWER(country) = LOWER(?)", country).
		Order("name ASC").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
