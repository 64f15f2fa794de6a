package handlers

import (
	"errors"
	"log/slog"

	"github.com/fitme95/fitme-backend/internal/apperrors"
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// respondError translates a service error into the envelope. Every kind keeps
// its own message; anything unrecognized becomes a 500 with the underlying
// message attached for diagnostics.
func respondError(c *fiber.Ctx, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		var fields interface{}
		if ve.HasFields() {
			fields = ve.Fields
		}
		return dto.RespondError(c, fiber.StatusBadRequest, ve.Message, fields)
	}

	var ae *apperrors.AuthenticationError
	if errors.As(err, &ae) {
		var detail interface{}
		if ae.Err != nil {
			detail = ae.Err.Error()
		}
		return dto.RespondError(c, fiber.StatusUnauthorized, ae.Message, detail)
	}

	var nfe *apperrors.NotFoundError
	if errors.As(err, &nfe) {
		return dto.RespondError(c, fiber.StatusNotFound, nfe.Message, nil)
	}

	var ie *apperrors.IntegrityError
	if errors.As(err, &ie) {
		slog.Error("persistence failure", "method", c.Method(), "path", c.Path(), "error", ie.Err)
		var detail interface{}
		if ie.Err != nil {
			detail = ie.Err.Error()
		}
		return dto.RespondError(c, fiber.StatusInternalServerError, ie.Message, detail)
	}

	slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	return dto.RespondError(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
}
