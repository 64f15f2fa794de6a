package services

import (
	"errors"
	"fmt"

	"github.com/fitme95/fitme-backend/internal/apperrors"
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/models"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoutineService struct {
	db *gorm.DB
}

func NewRoutineService(db *gorm.DB) *RoutineService {
	return &RoutineService{db: db}
}

func (s *RoutineService) List(userID string) ([]models.Routine, error) {
	var routines []models.Routine
	err := s.db.Preload("Tasks", orderTasks).
		Scopes(scope.OwnedBy(userID)).
		Order("created_at ASC").
		Find(&routines).Error
	return routines, err
}

// Create persists the routine together with its full task set in one
// transaction, owned by the caller regardless of any user in the payload.
func (s *RoutineService) Create(userID string, req dto.CreateRoutineRequest) (*models.Routine, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidation("No data provided")
	}

	ve := apperrors.NewValidation("Invalid routine data")
	if req.Name == nil || *req.Name == "" {
		ve.Add("name", requiredMsg)
	}
	if req.Tasks == nil {
		ve.Add("tasks", requiredMsg)
	} else {
		validateTasks(*req.Tasks, ve)
	}
	if req.SelectedRoutineDays != nil {
		validateDays(*req.SelectedRoutineDays, ve)
	}
	if ve.HasFields() {
		return nil, ve
	}

	routine := models.Routine{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                *req.Name,
		SelectedRoutineDays: []string{},
	}
	if req.SelectedRoutineDays != nil {
		routine.SelectedRoutineDays = *req.SelectedRoutineDays
	}

	tasks := buildTasks(routine.ID, *req.Tasks)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tasks").Create(&routine).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
	if err != nil {
		return nil, &apperrors.IntegrityError{
			Message: "Database error occurred while saving routine",
			Err:     err,
		}
	}

	routine.Tasks = tasks
	return &routine, nil
}

// Update merges name and selected days individually; a supplied task list
// replaces the prior set entirely, recreated in the given order.
func (s *RoutineService) Update(userID string, id uuid.UUID, req dto.UpdateRoutineRequest) (*models.Routine, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidation("No data provided")
	}

	routine, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	ve := apperrors.NewValidation("Invalid routine data")
	if req.Name != nil && *req.Name == "" {
		ve.Add("name", "This field may not be blank.")
	}
	if req.Tasks != nil {
		validateTasks(*req.Tasks, ve)
	}
	if req.SelectedRoutineDays != nil {
		validateDays(*req.SelectedRoutineDays, ve)
	}
	if ve.HasFields() {
		return nil, ve
	}

	if req.Name != nil {
		routine.Name = *req.Name
	}
	if req.SelectedRoutineDays != nil {
		routine.SelectedRoutineDays = *req.SelectedRoutineDays
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tasks").Save(routine).Error; err != nil {
			return err
		}
		if req.Tasks == nil {
			return nil
		}
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		tasks := buildTasks(routine.ID, *req.Tasks)
		routine.Tasks = tasks
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
	if err != nil {
		return nil, &apperrors.IntegrityError{
			Message: "Database error occurred while updating routine",
			Err:     err,
		}
	}

	return routine, nil
}

// UpdateTaskStatus resolves the task through routines owned by the caller, so
// a foreign task and a nonexistent task are indistinguishable.
func (s *RoutineService) UpdateTaskStatus(userID string, taskID uuid.UUID, status string) (*models.Task, error) {
	var task models.Task
	err := s.db.
		Joins("JOIN routines ON routines.id = tasks.routine_id").
		Where("tasks.id = ? AND routines.user_id = ?", taskID, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Message: "Task not found"}
	}
	if err != nil {
		return nil, err
	}

	if !models.IsValidTaskStatus(status) {
		return nil, apperrors.NewValidation("Invalid status value")
	}

	task.Status = status
	if err := s.db.Save(&task).Error; err != nil {
		return nil, &apperrors.IntegrityError{
			Message: "Database error occurred while updating routine",
			Err:     err,
		}
	}

	return &task, nil
}

// Delete removes the routine and all its tasks in one transaction.
func (s *RoutineService) Delete(userID string, id uuid.UUID) error {
	routine, err := s.getOwned(userID, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Routine{}, "id = ?", routine.ID).Error
	})
	if err != nil {
		return &apperrors.IntegrityError{
			Message: "Failed to delete routine",
			Err:     err,
		}
	}

	return nil
}

func (s *RoutineService) getOwned(userID string, id uuid.UUID) (*models.Routine, error) {
	var routine models.Routine
	err := s.db.Preload("Tasks", orderTasks).
		Scopes(scope.OwnedBy(userID)).
		First(&routine, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Message: "Routine not found"}
	}
	if err != nil {
		return nil, err
	}
	return &routine, nil
}

func orderTasks(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func buildTasks(routineID uuid.UUID, payloads []dto.TaskPayload) []models.Task {
	tasks := make([]models.Task, 0, len(payloads))
	for i, p := range payloads {
		task := models.Task{
			ID:        uuid.New(),
			RoutineID: routineID,
			Name:      *p.Name,
			Status:    models.TaskStatusPending,
			Position:  i,
		}
		if p.Status != nil {
			task.Status = *p.Status
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func validateTasks(payloads []dto.TaskPayload, ve *apperrors.ValidationError) {
	for i, p := range payloads {
		if p.Name == nil || *p.Name == "" {
			ve.Add(fmt.Sprintf("tasks[%d].name", i), requiredMsg)
		}
		if p.Status != nil && !models.IsValidTaskStatus(*p.Status) {
			ve.Add(fmt.Sprintf("tasks[%d].status", i), invalidChoiceMsg(*p.Status))
		}
	}
}

func validateDays(days []string, ve *apperrors.ValidationError) {
	for _, day := range days {
		if !contains(models.RoutineDays, day) {
			ve.Add("selected_routine_days", invalidChoiceMsg(day))
		}
	}
}
