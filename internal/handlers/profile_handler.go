package handlers

import (
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/fitme95/fitme-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Onboarding creates the caller's profile on first submission, updates it on
// later ones.
func (h *ProfileHandler) Onboarding(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	var req dto.SubmitProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	profile, created, err := h.profileService.Submit(userID, req)
	if err != nil {
		return respondError(c, err)
	}

	if created {
		return dto.Respond(c, fiber.StatusCreated, "User Profile Setup Completed", profile)
	}
	return dto.Respond(c, fiber.StatusOK, "User Profile Updated Successfully", fiber.Map{"profile": profile})
}
