package services

import (
	"errors"
	"testing"

	"github.com/fitme95/fitme-backend/internal/apperrors"
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func fullRoutineRequest() dto.CreateRoutineRequest {
	return dto.CreateRoutineRequest{
		Name:                ptrString("Push Day"),
		SelectedRoutineDays: &[]string{"mon", "thu"},
		Tasks: &[]dto.TaskPayload{
			{Name: ptrString("Bench press")},
			{Name: ptrString("Overhead press"), Status: ptrString(models.TaskStatusCompleted)},
			{Name: ptrString("Dips")},
		},
	}
}

func TestCreateRoutine_EmptyPayload(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	_, err := svc.Create(user.GoogleID, dto.CreateRoutineRequest{})
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "No data provided", ve.Message)
}

func TestCreateRoutine_MissingNameAndTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	_, err := svc.Create(user.GoogleID, dto.CreateRoutineRequest{
		SelectedRoutineDays: &[]string{"mon"},
	})
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Invalid routine data", ve.Message)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "tasks")
}

func TestCreateRoutine_InvalidDayAndTaskFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	req := dto.CreateRoutineRequest{
		Name:                ptrString("Legs"),
		SelectedRoutineDays: &[]string{"mon", "funday"},
		Tasks: &[]dto.TaskPayload{
			{Name: ptrString("Squat")},
			{Name: ptrString("")},
			{Name: ptrString("Lunge"), Status: ptrString("done")},
		},
	}

	_, err := svc.Create(user.GoogleID, req)
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "selected_routine_days")
	assert.Contains(t, ve.Fields, "tasks[1].name")
	assert.Contains(t, ve.Fields, "tasks[2].status")

	var count int64
	db.Model(&models.Routine{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateRoutine_Success(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	routine, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)
	assert.Equal(t, "Push Day", routine.Name)
	assert.Equal(t, user.GoogleID, routine.UserID)
	assert.Equal(t, []string{"mon", "thu"}, []string(routine.SelectedRoutineDays))
	assert.Len(t, routine.Tasks, 3)
	assert.Equal(t, "Bench press", routine.Tasks[0].Name)
	assert.Equal(t, models.TaskStatusPending, routine.Tasks[0].Status)
	assert.Equal(t, models.TaskStatusCompleted, routine.Tasks[1].Status)
}

func TestListRoutines_TasksKeepGivenOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	_, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	list, err := svc.List(user.GoogleID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	names := []string{}
	for _, task := range list[0].Tasks {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{"Bench press", "Overhead press", "Dips"}, names)
}

func TestListRoutines_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	_, err := svc.Create(alice.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	list, err := svc.List(bob.GoogleID)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateRoutine_ReplacesTaskSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	created, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)
	oldTaskID := created.Tasks[0].ID

	updated, err := svc.Update(user.GoogleID, created.ID, dto.UpdateRoutineRequest{
		Tasks: &[]dto.TaskPayload{
			{Name: ptrString("Incline press")},
			{Name: ptrString("Cable fly")},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, updated.Tasks, 2)
	assert.Equal(t, "Incline press", updated.Tasks[0].Name)

	// The old tasks are gone, not merged
	var count int64
	db.Model(&models.Task{}).Where("routine_id = ?", created.ID).Count(&count)
	assert.Equal(t, int64(2), count)
	var old models.Task
	err = db.First(&old, "id = ?", oldTaskID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateRoutine_WithoutTasksKeepsThem(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	created, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	_, err = svc.Update(user.GoogleID, created.ID, dto.UpdateRoutineRequest{
		Name: ptrString("Push Day v2"),
	})
	assert.NoError(t, err)

	reloaded, err := svc.getOwned(user.GoogleID, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Push Day v2", reloaded.Name)
	assert.Len(t, reloaded.Tasks, 3)
}

func TestUpdateRoutine_BlankName(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	created, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	_, err = svc.Update(user.GoogleID, created.ID, dto.UpdateRoutineRequest{Name: ptrString("")})
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "name")
}

func TestUpdateRoutine_NotFoundIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	created, err := svc.Create(alice.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	req := dto.UpdateRoutineRequest{Name: ptrString("Stolen")}

	_, foreignErr := svc.Update(bob.GoogleID, created.ID, req)
	_, missingErr := svc.Update(bob.GoogleID, uuid.New(), req)

	var nfe *apperrors.NotFoundError
	assert.True(t, errors.As(foreignErr, &nfe))
	assert.Equal(t, "Routine not found", nfe.Message)
	assert.True(t, errors.As(missingErr, &nfe))
	assert.Equal(t, "Routine not found", nfe.Message)
}

func TestUpdateTaskStatus_Success(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	created, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	task, err := svc.UpdateTaskStatus(user.GoogleID, created.Tasks[0].ID, models.TaskStatusSkipped)
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusSkipped, task.Status)
}

func TestUpdateTaskStatus_InvalidStatusLeavesRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	created, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	_, err = svc.UpdateTaskStatus(user.GoogleID, created.Tasks[0].ID, "finished")
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Invalid status value", ve.Message)

	var task models.Task
	assert.NoError(t, db.First(&task, "id = ?", created.Tasks[0].ID).Error)
	assert.Equal(t, models.TaskStatusPending, task.Status)
}

func TestUpdateTaskStatus_ForeignTask(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	created, err := svc.Create(alice.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	_, err = svc.UpdateTaskStatus(bob.GoogleID, created.Tasks[0].ID, models.TaskStatusCompleted)
	var nfe *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nfe))
	assert.Equal(t, "Task not found", nfe.Message)
}

func TestDeleteRoutine_RemovesTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	user := createTestUser(t, db, "g1", "g1@example.com")

	created, err := svc.Create(user.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(user.GoogleID, created.ID))

	var rCount, tCount int64
	db.Model(&models.Routine{}).Count(&rCount)
	db.Model(&models.Task{}).Count(&tCount)
	assert.Equal(t, int64(0), rCount)
	assert.Equal(t, int64(0), tCount)
}

func TestDeleteRoutine_ForeignRowUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	created, err := svc.Create(alice.GoogleID, fullRoutineRequest())
	assert.NoError(t, err)

	err = svc.Delete(bob.GoogleID, created.ID)
	var nfe *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nfe))

	var count int64
	db.Model(&models.Routine{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
