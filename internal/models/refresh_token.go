package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken stores only the sha256 hash of the issued token. Rotation
// revokes the presented row and inserts a new one.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"size:255;not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:GoogleID" json:"-"`
}
