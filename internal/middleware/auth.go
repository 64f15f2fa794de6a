package middleware

import (
	"github.com/fitme95/fitme-backend/internal/config"
	"github.com/fitme95/fitme-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return dto.RespondError(c, fiber.StatusUnauthorized, "Unauthorized access", err.Error())
		},
	})
}
