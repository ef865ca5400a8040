package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportRequest is a standalone customer support ticket with no relation to
// applications or payments.
type SupportRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(100);not null" json:"email"`
	Subject    string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsResolved bool      `gorm:"not null;default:false;index" json:"isResolved"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
