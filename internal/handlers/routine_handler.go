package handlers

import (
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/fitme95/fitme-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RoutineHandler struct {
	routineService *services.RoutineService
}

func NewRoutineHandler(routineService *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

func (h *RoutineHandler) List(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	routines, err := h.routineService.List(userID)
	if err != nil {
		return respondError(c, err)
	}

	if len(routines) == 0 {
		return dto.Respond(c, fiber.StatusOK, "No routines found. Please add a routine",
			fiber.Map{"routines": routines})
	}
	return dto.Respond(c, fiber.StatusOK, "Your routines", fiber.Map{"routines": routines})
}

func (h *RoutineHandler) Create(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	var req dto.CreateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	routine, err := h.routineService.Create(userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusCreated, "Routine created successfully",
		fiber.Map{"routine": routine})
}

func (h *RoutineHandler) Update(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return dto.RespondError(c, fiber.StatusNotFound, "Routine not found", nil)
	}

	var req dto.UpdateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	routine, err := h.routineService.Update(userID, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusOK, "Routine updated successfully",
		fiber.Map{"routine": routine})
}

func (h *RoutineHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return dto.RespondError(c, fiber.StatusNotFound, "Task not found", nil)
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	task, err := h.routineService.UpdateTaskStatus(userID, taskID, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusOK, "Task status updated successfully",
		fiber.Map{"task": task})
}

func (h *RoutineHandler) Delete(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return dto.RespondError(c, fiber.StatusNotFound, "Routine not found", nil)
	}

	if err := h.routineService.Delete(userID, id); err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusOK, "Routine deleted successfully", nil)
}
