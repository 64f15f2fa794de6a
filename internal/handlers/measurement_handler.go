package handlers

import (
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/fitme95/fitme-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MeasurementHandler struct {
	measurementService *services.MeasurementService
}

func NewMeasurementHandler(measurementService *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{measurementService: measurementService}
}

func (h *MeasurementHandler) Create(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	var req dto.CreateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	measurement, err := h.measurementService.Create(userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusCreated, "Measurement created successfully",
		fiber.Map{"measurement": measurement})
}

func (h *MeasurementHandler) List(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	measurements, err := h.measurementService.List(userID)
	if err != nil {
		return respondError(c, err)
	}

	if len(measurements) == 0 {
		return dto.Respond(c, fiber.StatusOK, "No measurements found. Please add a measurement",
			fiber.Map{"measurements": measurements})
	}
	return dto.Respond(c, fiber.StatusOK, "Your measurements",
		fiber.Map{"measurements": measurements})
}

func (h *MeasurementHandler) Update(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	// An unparseable id cannot match any record, so it reads as not found.
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return dto.RespondError(c, fiber.StatusNotFound, "Measurement not found", nil)
	}

	var req dto.UpdateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	measurement, err := h.measurementService.Update(userID, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusOK, "Measurement updated successfully",
		fiber.Map{"measurement": measurement})
}

func (h *MeasurementHandler) Delete(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return dto.RespondError(c, fiber.StatusNotFound, "Measurement not found", nil)
	}

	if err := h.measurementService.Delete(userID, id); err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusOK, "Measurement deleted successfully", nil)
}
