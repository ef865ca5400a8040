package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealership/internal/model"
	"dealership/internal/repository"
	"dealership/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type IssueLetterRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	DealershipID  string `json:"dealershipId" binding:"required,max=50"`
	FilePath      string `json:"filePath" binding:"required,max=255"`
}

// --- Interface ---

type LetterService interface {
	Issue(ctx context.Context, req IssueLetterRequest) (*model.ApprovalLetter, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*model.ApprovalLetter, error)
}

type letterService struct {
	letterRepo repository.LetterRepository
	appRepo    repository.ApplicationRepository
	txManager  repository.TransactionManager
}

func NewLetterService(
	letterRepo repository.LetterRepository,
	appRepo repository.ApplicationRepository,
	txManager repository.TransactionManager,
) LetterService {
	return &letterService{
		letterRepo: letterRepo,
		appRepo:    appRepo,
		txManager:  txManager,
	}
}

// --- Implementation ---

// Issue creates the single approval letter an approved application may carry.
// The pre-check gives a friendly conflict message; the unique index on
// application_id is what actually prevents a duplicate under concurrency.
func (s *letterService) Issue(ctx context.Context, req IssueLetterRequest) (*model.ApprovalLetter, error) {
	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid application id: %s", req.ApplicationID)
	}

	var letter *model.ApprovalLetter
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		app, findErr := s.appRepo.GetByID(txCtx, appID)
		if findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.NotFound, "application not found")
			}
			return fmt.Errorf("failed to fetch application: %w", findErr)
		}

		if app.Status != model.StatusApproved {
			return apperror.New(apperror.PreconditionFailed,
				"cannot create approval letter for non-approved application (status %s)", app.Status)
		}

		if _, existsErr := s.letterRepo.GetByApplicationID(txCtx, appID); existsErr == nil {
			return apperror.New(apperror.Conflict, "approval letter already exists for this application")
		} else if !errors.Is(existsErr, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing approval letter: %w", existsErr)
		}

		letter = &model.ApprovalLetter{
			ApplicationID: appID,
			DealershipID:  req.DealershipID,
			FilePath:      req.FilePath,
			IssuedDate:    time.Now().UTC(),
		}
		if createErr := s.letterRepo.Create(txCtx, letter); createErr != nil {
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return apperror.New(apperror.Conflict, "approval letter already exists for this application")
			}
			return fmt.Errorf("failed to create approval letter: %w", createErr)
		}

		// Record the letter location on the application itself
		app.ApprovalLetterURL = req.FilePath
		if saveErr := s.appRepo.Update(txCtx, app); saveErr != nil {
			return fmt.Errorf("failed to record letter on application: %w", saveErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return letter, nil
}

func (s *letterService) GetByApplicationID(ctx context.Context, applicationID string) (*model.ApprovalLetter, error) {
	appID, err := uuid.Parse(applicationID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid application id: %s", applicationID)
	}

	letter, err := s.letterRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "approval letter not found")
		}
		return nil, fmt.Errorf("failed to fetch approval letter: %w", err)
	}
	return letter, nil
}
