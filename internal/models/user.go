package models

import "time"

// User is created on first Google login. GoogleID is the external subject id
// and never changes after creation.
type User struct {
	GoogleID  string    `gorm:"primaryKey;size:255" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	FirstName string    `gorm:"size:255" json:"first_name"`
	LastName  string    `gorm:"size:255" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
