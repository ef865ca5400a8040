package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus enum constants
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

// IsValidPaymentStatus reports whether s is a member of the payment status enumeration.
func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment records a payment attempt against an application. Payments are
// recorded, not processed; gateway integration lives elsewhere.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"applicationId"`
	Application   *Application    `gorm:"foreignKey:ApplicationID" json:"-"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	TransactionID *string         `gorm:"type:varchar(100);uniqueIndex" json:"transactionId,omitempty"` // Unique once set
	PaymentMethod string          `gorm:"type:varchar(50);not null" json:"paymentMethod"`
	Status        string          `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	UPIReference  string          `gorm:"type:varchar(100)" json:"upiReference,omitempty"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
