package repository

import (
	"context"

	"dealership/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusUpdateRepository appends and reads the application audit trail.
// There is no Update or Delete; audit rows are immutable.
type StatusUpdateRepository interface {
	Create(ctx context.Context, update *model.StatusUpdate) error
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]model.StatusUpdate, error)
}

type statusUpdateRepository struct {
	db *gorm.DB
}

func NewStatusUpdateRepository(db *gorm.DB) StatusUpdateRepository {
	return &statusUpdateRepository{db: db}
}

func (r *statusUpdateRepository) Create(ctx context.Context, update *model.StatusUpdate) error {
	return GetDB(ctx, r.db).Create(update).Error
}

func (r *statusUpdateRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]model.StatusUpdate, error) {
	var updates []model.StatusUpdate
	if err := GetDB(ctx, r.db).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}
