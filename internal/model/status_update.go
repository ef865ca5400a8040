package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusUpdate is an immutable audit record appended for every application
// status transition. Rows are never updated or deleted; the full set per
// application forms its review history.
type StatusUpdate struct {
	ID             uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicationID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"applicationId"`
	Application    *Application `gorm:"foreignKey:ApplicationID" json:"-"`
	PreviousStatus string       `gorm:"type:varchar(30);not null" json:"previousStatus"`
	NewStatus      string       `gorm:"type:varchar(30);not null" json:"newStatus"`
	Notes          string       `gorm:"type:text" json:"notes,omitempty"`
	UpdatedBy      *uuid.UUID   `gorm:"type:uuid" json:"updatedBy,omitempty"` // Nullable when no authenticated actor
	Updater        *User        `gorm:"foreignKey:UpdatedBy" json:"-"`
	CreatedAt      time.Time    `gorm:"autoCreateTime;index" json:"createdAt"`
}

// TableName keeps the historical table name for the audit trail.
func (StatusUpdate) TableName() string {
	return "application_status_updates"
}
