package repository

import (
	"context"

	"dealership/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationRepository defines the interface for data access of Application entities
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*model.Application, error)
	List(ctx context.Context, skip, limit int) ([]model.Application, int64, error)
	Update(ctx context.Context, app *model.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new instance of ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	return GetDB(ctx, r.db).Create(app).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := GetDB(ctx, r.db).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) GetByTrackingID(ctx context.Context, trackingID string) (*model.Application, error) {
	var app model.Application
	if err := GetDB(ctx, r.db).First(&app, "tracking_id = ?", trackingID).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) List(ctx context.Context, skip, limit int) ([]model.Application, int64, error) {
	var apps []model.Application
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("created_at DESC").Offset(skip).Limit(limit).Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *model.Application) error {
	return GetDB(ctx, r.db).Save(app).Error
}
