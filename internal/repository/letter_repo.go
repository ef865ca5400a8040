package repository

import (
	"context"

	"dealership/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LetterRepository defines the interface for data access of ApprovalLetter entities.
// Create relies on the unique index over application_id so a concurrent
// duplicate insert fails at the storage layer instead of racing a pre-check.
type LetterRepository interface {
	Create(ctx context.Context, letter *model.ApprovalLetter) error
	GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*model.ApprovalLetter, error)
}

type letterRepository struct {
	db *gorm.DB
}

// NewLetterRepository returns a new instance of LetterRepository
func NewLetterRepository(db *gorm.DB) LetterRepository {
	return &letterRepository{db: db}
}

func (r *letterRepository) Create(ctx context.Context, letter *model.ApprovalLetter) error {
	return GetDB(ctx, r.db).Create(letter).Error
}

func (r *letterRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*model.ApprovalLetter, error) {
	var letter model.ApprovalLetter
	if err := GetDB(ctx, r.db).First(&letter, "application_id = ?", applicationID).Error; err != nil {
		return nil, err
	}
	return &letter, nil
}
