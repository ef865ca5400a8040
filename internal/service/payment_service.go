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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreatePaymentRequest struct {
	ApplicationID string          `json:"applicationId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,max=50"`
	UPIReference  string          `json:"upiReference" binding:"omitempty,max=100"`
}

// UpdatePaymentRequest applies partial-update semantics: only non-nil fields
// are written, absent fields are no-ops.
type UpdatePaymentRequest struct {
	Status        *string          `json:"status"`
	Amount        *decimal.Decimal `json:"amount"`
	TransactionID *string          `json:"transactionId"`
	UPIReference  *string          `json:"upiReference"`
	PaymentDate   *time.Time       `json:"paymentDate"`
}

// --- Interface ---

type PaymentService interface {
	Record(ctx context.Context, req CreatePaymentRequest) (*model.Payment, error)
	GetByID(ctx context.Context, id string) (*model.Payment, error)
	ListByApplication(ctx context.Context, applicationID string) ([]model.Payment, error)
	Update(ctx context.Context, id string, req UpdatePaymentRequest) (*model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	appRepo     repository.ApplicationRepository
	txManager   repository.TransactionManager
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	appRepo repository.ApplicationRepository,
	txManager repository.TransactionManager,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		appRepo:     appRepo,
		txManager:   txManager,
	}
}

// --- Implementation ---

func (s *paymentService) Record(ctx context.Context, req CreatePaymentRequest) (*model.Payment, error) {
	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid application id: %s", req.ApplicationID)
	}

	if _, err := s.appRepo.GetByID(ctx, appID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "application not found")
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}

	payment := &model.Payment{
		ApplicationID: appID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		UPIReference:  req.UPIReference,
		Status:        model.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return payment, nil
}

func (s *paymentService) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid payment id: %s", id)
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "payment not found")
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) ListByApplication(ctx context.Context, applicationID string) ([]model.Payment, error) {
	appID, err := uuid.Parse(applicationID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid application id: %s", applicationID)
	}

	if _, err := s.appRepo.GetByID(ctx, appID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "application not found")
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}

	payments, err := s.paymentRepo.ListByApplication(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) Update(ctx context.Context, id string, req UpdatePaymentRequest) (*model.Payment, error) {
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid payment id: %s", id)
	}

	if req.Status != nil && !model.IsValidPaymentStatus(*req.Status) {
		return nil, apperror.New(apperror.Validation, "unknown payment status: %s", *req.Status)
	}

	var payment *model.Payment
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		payment, err = s.paymentRepo.GetByID(txCtx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.NotFound, "payment not found")
			}
			return fmt.Errorf("failed to fetch payment: %w", err)
		}

		if req.Status != nil {
			payment.Status = *req.Status
		}
		if req.Amount != nil {
			payment.Amount = *req.Amount
		}
		if req.TransactionID != nil {
			payment.TransactionID = req.TransactionID
		}
		if req.UPIReference != nil {
			payment.UPIReference = *req.UPIReference
		}
		if req.PaymentDate != nil {
			payment.PaymentDate = req.PaymentDate
		}

		if saveErr := s.paymentRepo.Update(txCtx, payment); saveErr != nil {
			if errors.Is(saveErr, gorm.ErrDuplicatedKey) {
				return apperror.New(apperror.Conflict, "transaction id already recorded")
			}
			return fmt.Errorf("failed to update payment: %w", saveErr)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return payment, nil
}
