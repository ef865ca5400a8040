package service

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/model"
	"dealership/internal/repository"
	"dealership/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateSupportRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

type ResolveSupportRequest struct {
	IsResolved *bool `json:"isResolved" binding:"required"`
}

// --- Interface ---

type SupportService interface {
	Create(ctx context.Context, req CreateSupportRequest) (*model.SupportRequest, error)
	GetByID(ctx context.Context, id string) (*model.SupportRequest, error)
	List(ctx context.Context, skip, limit int) ([]model.SupportRequest, int64, error)
	Resolve(ctx context.Context, id string, req ResolveSupportRequest) (*model.SupportRequest, error)
}

type supportService struct {
	repo repository.SupportRepository
}

func NewSupportService(repo repository.SupportRepository) SupportService {
	return &supportService{repo: repo}
}

// --- Implementation ---

func (s *supportService) Create(ctx context.Context, req CreateSupportRequest) (*model.SupportRequest, error) {
	ticket := &model.SupportRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create support request: %w", err)
	}
	return ticket, nil
}

func (s *supportService) GetByID(ctx context.Context, id string) (*model.SupportRequest, error) {
	ticketID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid support request id: %s", id)
	}

	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "support request not found")
		}
		return nil, fmt.Errorf("failed to fetch support request: %w", err)
	}
	return ticket, nil
}

func (s *supportService) List(ctx context.Context, skip, limit int) ([]model.SupportRequest, int64, error) {
	requests, total, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list support requests: %w", err)
	}
	return requests, total, nil
}

func (s *supportService) Resolve(ctx context.Context, id string, req ResolveSupportRequest) (*model.SupportRequest, error) {
	ticket, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.IsResolved = *req.IsResolved
	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update support request: %w", err)
	}
	return ticket, nil
}
