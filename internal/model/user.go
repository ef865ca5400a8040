package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner reference for applications and the actor identity on
// status updates. Authentication is optional everywhere; the entity exists so
// audit rows can point at a real account when one is present.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin        bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
