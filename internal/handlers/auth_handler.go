package handlers

import (
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/fitme95/fitme-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges a Google ID token for a session. 201 when the user was
// created on this call, 200 when the identity was already known.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	resp, created, err := h.authService.GoogleLogin(req.ID)
	if err != nil {
		return respondError(c, err)
	}

	statusCode := fiber.StatusOK
	if created {
		statusCode = fiber.StatusCreated
	}
	return dto.Respond(c, statusCode, "Login successful", resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.RespondError(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusOK, "Token refreshed successfully", resp)
}

func (h *AuthHandler) UserInfo(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
	}

	user, err := h.authService.UserInfo(userID)
	if err != nil {
		return respondError(c, err)
	}

	return dto.Respond(c, fiber.StatusOK, "User Information Retrieved", fiber.Map{"user": user})
}
