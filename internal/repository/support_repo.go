package repository

import (
	"context"

	"dealership/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportRepository defines the interface for data access of SupportRequest entities
type SupportRepository interface {
	Create(ctx context.Context, req *model.SupportRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.SupportRequest, error)
	List(ctx context.Context, skip, limit int) ([]model.SupportRequest, int64, error)
	Update(ctx context.Context, req *model.SupportRequest) error
}

type supportRepository struct {
	db *gorm.DB
}

// NewSupportRepository returns a new instance of SupportRepository
func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepository{db: db}
}

func (r *supportRepository) Create(ctx context.Context, req *model.SupportRequest) error {
	return GetDB(ctx, r.db).Create(req).Error
}

func (r *supportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SupportRequest, error) {
	var req model.SupportRequest
	if err := GetDB(ctx, r.db).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *supportRepository) List(ctx context.Context, skip, limit int) ([]model.SupportRequest, int64, error) {
	var requests []model.SupportRequest
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.SupportRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("created_at DESC").Offset(skip).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *supportRepository) Update(ctx context.Context, req *model.SupportRequest) error {
	return GetDB(ctx, r.db).Save(req).Error
}
