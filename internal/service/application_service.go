package service

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/model"
	"dealership/internal/repository"
	ws "dealership/internal/websocket"
	"dealership/pkg/apperror"
	"dealership/pkg/tracking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateApplicationRequest struct {
	FirstName          string `json:"firstName" binding:"required,max=50"`
	LastName           string `json:"lastName" binding:"required,max=50"`
	Email              string `json:"email" binding:"required,email"`
	Phone              string `json:"phone" binding:"required,min=10,max=15"`
	BusinessName       string `json:"businessName" binding:"required,max=100"`
	BusinessType       string `json:"businessType" binding:"required,max=50"`
	GSTNumber          string `json:"gstNumber" binding:"omitempty,max=15"`
	PANNumber          string `json:"panNumber" binding:"required,len=10"`
	YearsInBusiness    int    `json:"yearsInBusiness" binding:"min=0"`
	Address            string `json:"address" binding:"required"`
	City               string `json:"city" binding:"required,max=50"`
	State              string `json:"state" binding:"required,max=50"`
	Pincode            string `json:"pincode" binding:"required,max=10"`
	Area               string `json:"area" binding:"required,max=50"`
	InvestmentCapacity string `json:"investmentCapacity"`
	ExistingBusiness   string `json:"existingBusiness"`
	ReasonForInterest  string `json:"reasonForInterest"`
}

type UpdateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes"`
}

// ApplicationConfig carries environment-driven creation defaults.
type ApplicationConfig struct {
	TrackingPrefix       string
	DefaultPaymentAmount *decimal.Decimal
}

// --- Interface ---

type ApplicationService interface {
	Create(ctx context.Context, req CreateApplicationRequest, ownerID string) (*model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*model.Application, error)
	List(ctx context.Context, skip, limit int) ([]model.Application, int64, error)
	StatusHistory(ctx context.Context, id string) ([]model.StatusUpdate, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest, actorID string) (*model.Application, error)
}

// statusBroadcaster decouples the service from the concrete hub so tests can
// run without websocket plumbing.
type statusBroadcaster interface {
	BroadcastStatusEvent(event ws.StatusEvent)
}

type applicationService struct {
	appRepo    repository.ApplicationRepository
	statusRepo repository.StatusUpdateRepository
	txManager  repository.TransactionManager
	hub        statusBroadcaster
	cfg        ApplicationConfig
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	statusRepo repository.StatusUpdateRepository,
	txManager repository.TransactionManager,
	hub statusBroadcaster,
	cfg ApplicationConfig,
) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		statusRepo: statusRepo,
		txManager:  txManager,
		hub:        hub,
		cfg:        cfg,
	}
}

// --- Implementation ---

func (s *applicationService) Create(ctx context.Context, req CreateApplicationRequest, ownerID string) (*model.Application, error) {
	app := &model.Application{
		TrackingID:         tracking.NewID(s.cfg.TrackingPrefix),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		BusinessName:       req.BusinessName,
		BusinessType:       req.BusinessType,
		GSTNumber:          req.GSTNumber,
		PANNumber:          req.PANNumber,
		YearsInBusiness:    req.YearsInBusiness,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		Pincode:            req.Pincode,
		Area:               req.Area,
		InvestmentCapacity: req.InvestmentCapacity,
		ExistingBusiness:   req.ExistingBusiness,
		ReasonForInterest:  req.ReasonForInterest,
		Status:             model.StatusSubmitted,
		UserID:             parseActorID(ownerID),
	}

	if s.cfg.DefaultPaymentAmount != nil {
		amount := *s.cfg.DefaultPaymentAmount
		app.PaymentAmount = &amount
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Tracking token collision; astronomically unlikely but retriable
			app.TrackingID = tracking.NewID(s.cfg.TrackingPrefix)
			if retryErr := s.appRepo.Create(ctx, app); retryErr != nil {
				return nil, fmt.Errorf("failed to create application: %w", retryErr)
			}
			return app, nil
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}

func (s *applicationService) GetByID(ctx context.Context, id string) (*model.Application, error) {
	appID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid application id: %s", id)
	}

	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "application not found")
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return app, nil
}

func (s *applicationService) GetByTrackingID(ctx context.Context, trackingID string) (*model.Application, error) {
	app, err := s.appRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "application not found")
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, skip, limit int) ([]model.Application, int64, error) {
	apps, total, err := s.appRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, total, nil
}

func (s *applicationService) StatusHistory(ctx context.Context, id string) ([]model.StatusUpdate, error) {
	app, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates, err := s.statusRepo.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status history: %w", err)
	}
	return updates, nil
}

// UpdateStatus transitions an application to a new status and appends the
// audit record inside one transaction so a partial write is never observable.
func (s *applicationService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest, actorID string) (*model.Application, error) {
	appID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid application id: %s", id)
	}

	if !model.IsValidStatus(req.Status) {
		return nil, apperror.New(apperror.Validation, "unknown status: %s", req.Status)
	}

	var app *model.Application
	var previousStatus string

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		app, err = s.appRepo.GetByID(txCtx, appID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.NotFound, "application not found")
			}
			return fmt.Errorf("failed to fetch application: %w", err)
		}

		previousStatus = app.Status
		if !model.CanTransition(previousStatus, req.Status) {
			return apperror.New(apperror.PreconditionFailed,
				"cannot transition application from %s to %s", previousStatus, req.Status)
		}

		update := &model.StatusUpdate{
			ApplicationID:  app.ID,
			PreviousStatus: previousStatus,
			NewStatus:      req.Status,
			Notes:          req.AdminNotes,
			UpdatedBy:      parseActorID(actorID),
		}
		if createErr := s.statusRepo.Create(txCtx, update); createErr != nil {
			return fmt.Errorf("failed to append status update: %w", createErr)
		}

		app.Status = req.Status
		if req.AdminNotes != "" {
			app.AdminNotes = req.AdminNotes
			if req.Status == model.StatusRejected {
				app.RejectionReason = req.AdminNotes
			}
		}
		if saveErr := s.appRepo.Update(txCtx, app); saveErr != nil {
			return fmt.Errorf("failed to update application status: %w", saveErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastStatusEvent(ws.StatusEvent{
			Event:          "application.status_changed",
			ApplicationID:  app.ID.String(),
			TrackingID:     app.TrackingID,
			PreviousStatus: previousStatus,
			NewStatus:      app.Status,
		})
	}

	return app, nil
}

// parseActorID converts the optional authenticated actor id into a nullable
// reference; unauthenticated callers produce nil, matching the stub-actor model.
func parseActorID(actorID string) *uuid.UUID {
	if actorID == "" {
		return nil
	}
	parsed, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &parsed
}
