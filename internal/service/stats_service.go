package service

import (
	"context"
	"fmt"

	"dealership/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatsService interface {
	GetDashboardStats(ctx context.Context) (model.DashboardStats, error)
}

type statsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) StatsService {
	return &statsService{db: db}
}

// GetDashboardStats aggregates application, support and payment counters for
// the admin dashboard.
func (s *statsService) GetDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	if err := s.db.WithContext(ctx).Model(&model.Application{}).
		Count(&stats.TotalApplications).Error; err != nil {
		return stats, fmt.Errorf("failed to count applications: %w", err)
	}

	var byStatus []model.StatusCount
	if err := s.db.WithContext(ctx).Model(&model.Application{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("status ASC").
		Scan(&byStatus).Error; err != nil {
		return stats, fmt.Errorf("failed to group applications by status: %w", err)
	}
	stats.ApplicationsByStatus = byStatus

	if err := s.db.WithContext(ctx).Model(&model.SupportRequest{}).
		Where("is_resolved = ?", false).
		Count(&stats.OpenSupportRequests).Error; err != nil {
		return stats, fmt.Errorf("failed to count open support requests: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&model.Payment{}).
		Where("status = ?", model.PaymentCompleted).
		Count(&stats.CompletedPayments).Error; err != nil {
		return stats, fmt.Errorf("failed to count completed payments: %w", err)
	}

	var totalCompleted struct {
		Value decimal.Decimal
	}
	if err := s.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(amount), 0) as value").
		Where("status = ?", model.PaymentCompleted).
		Scan(&totalCompleted).Error; err != nil {
		return stats, fmt.Errorf("failed to sum completed payments: %w", err)
	}
	stats.CompletedAmount = totalCompleted.Value

	return stats, nil
}
