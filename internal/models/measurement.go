package models

import (
	"time"

	"github.com/google/uuid"
)

// Waist is exclusively owned by one Measurement; it is created and deleted in
// the same transaction as its parent.
type Waist struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Waist      float64   `gorm:"not null" json:"waist"`
	AboveBelow int       `gorm:"not null" json:"above_below"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// Measurement is a body measurement snapshot. Date is set once at creation
// and never updated.
type Measurement struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"size:255;not null;index" json:"-"`
	BodyWeight float64   `gorm:"not null" json:"body_weight"`
	BodyFat    float64   `gorm:"not null" json:"body_fat"`
	Chest      float64   `gorm:"not null" json:"chest"`
	Date       time.Time `gorm:"not null" json:"date"`

	WaistID uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Waist   Waist     `gorm:"foreignKey:WaistID" json:"waist"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:GoogleID" json:"-"`
}
