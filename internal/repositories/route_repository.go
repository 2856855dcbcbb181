package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wayfare/internal/models/db_models"
)

type RouteRepository interface {
	Create(ctx context.Context, route *db_models.Route) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Route, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Route, error)
	ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Route, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) Create(ctx context.Context, route *db_models.Route) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(route).Error; err != nil {
		return uuid.Nil, err
	}
	return route.ID, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id string) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

func (r *routeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Route, error) {
	var routes []db_models.Route
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *routeRepository) ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Route, error) {
	var routes []db_models.Route
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Route{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
