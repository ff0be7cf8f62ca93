package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pocket-pm-be/internal/pkg/apperrors"
)

// ErrorHandlerMiddleware maps typed service errors onto HTTP statuses so
// controllers can simply return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperrors.AsAppError(err); ok {
			status := statusForKind(appErr.Kind)
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message, appErr.Fields...))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Internal server error"))
	}
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperrors.KindConflict:
		return fiber.StatusConflict
	case apperrors.KindGenerationUpstream:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
