package model

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalLetter references the letter document issued once per approved
// application. The unique index on application_id is the storage-layer
// backstop against duplicate issuance under concurrent requests.
type ApprovalLetter struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicationID uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"applicationId"`
	Application   *Application `gorm:"foreignKey:ApplicationID" json:"-"`
	DealershipID  string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"dealershipId"`
	FilePath      string       `gorm:"type:varchar(255);not null" json:"filePath"` // Path/URL only, file storage is external
	IssuedDate    time.Time    `gorm:"not null" json:"issuedDate"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
