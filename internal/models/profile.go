package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Allowed value sets for profile enum fields.
var (
	Genders       = []string{"m", "f"}
	WeightUnits   = []string{"kg", "lbs"}
	HeightUnits   = []string{"cm", "ft"}
	DistanceUnits = []string{"km", "mi"}
	LengthUnits   = []string{"cm", "in"}

	// MeasurableItems is the fixed set a profile may select from.
	MeasurableItems = []string{"weight", "waist", "chest", "fat", "height"}
)

// Profile holds the onboarding data. At most one row per user, enforced by
// the unique index on user_id.
type Profile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string    `gorm:"size:255;not null;uniqueIndex" json:"-"`

	Weight float64 `gorm:"not null" json:"weight"`
	Height float64 `gorm:"not null" json:"height"`
	Age    float64 `gorm:"not null" json:"age"`
	Gender *string `gorm:"size:10" json:"gender"`

	WeightUnit   string `gorm:"size:10;default:'kg'" json:"weight_unit"`
	HeightUnit   string `gorm:"size:10;default:'cm'" json:"height_unit"`
	DistanceUnit string `gorm:"size:10;default:'km'" json:"distance_unit"`
	LengthUnit   string `gorm:"size:10;default:'cm'" json:"length_unit"`

	SelectedMeasurableItems datatypes.JSONSlice[string] `json:"selected_measurable_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:GoogleID" json:"-"`
}
