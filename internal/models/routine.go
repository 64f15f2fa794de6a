package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TaskStatusPending      = "pending"
	TaskStatusCompleted    = "completed"
	TaskStatusNotCompleted = "notCompleted"
	TaskStatusSkipped      = "skipped"
)

var (
	TaskStatuses = []string{TaskStatusPending, TaskStatusCompleted, TaskStatusNotCompleted, TaskStatusSkipped}

	RoutineDays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
)

// Routine owns an ordered set of tasks. Updating a routine with a task list
// replaces the whole set; tasks are never merged.
type Routine struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string    `gorm:"size:255;not null;index" json:"-"`
	Name   string    `gorm:"size:255;not null" json:"name"`

	SelectedRoutineDays datatypes.JSONSlice[string] `json:"selected_routine_days"`

	Tasks []Task `gorm:"foreignKey:RoutineID" json:"tasks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:GoogleID" json:"-"`
}

// Task position records the order tasks were supplied in.
type Task struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoutineID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Status    string    `gorm:"size:20;default:'pending'" json:"status"`
	Position  int       `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func IsValidTaskStatus(status string) bool {
	for _, s := range TaskStatuses {
		if status == s {
			return true
		}
	}
	return false
}
