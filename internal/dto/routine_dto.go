package dto

type TaskPayload struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

type CreateRoutineRequest struct {
	Name                *string        `json:"name"`
	SelectedRoutineDays *[]string      `json:"selected_routine_days"`
	Tasks               *[]TaskPayload `json:"tasks"`
}

func (r CreateRoutineRequest) IsEmpty() bool {
	return r.Name == nil && r.SelectedRoutineDays == nil && r.Tasks == nil
}

// UpdateRoutineRequest merges name and days individually; a non-nil task list
// replaces the routine's tasks wholesale.
type UpdateRoutineRequest struct {
	Name                *string        `json:"name"`
	SelectedRoutineDays *[]string      `json:"selected_routine_days"`
	Tasks               *[]TaskPayload `json:"tasks"`
}

func (r UpdateRoutineRequest) IsEmpty() bool {
	return r.Name == nil && r.SelectedRoutineDays == nil && r.Tasks == nil
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
