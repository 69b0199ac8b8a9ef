package serverutils

import (
	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors returned by handlers into the
// standard response envelope. AppError kinds map to their HTTP status;
// anything else is treated as an internal error with the cause logged only.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperrors.As(err); ok {
			if appErr.Kind == apperrors.KindUpstream || appErr.Kind == apperrors.KindInternal {
				log.Error("HTTP", "Request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
			}
			return ctx.Status(appErr.StatusCode()).JSON(ErrorResponse(appErr.StatusCode(), appErr.Message))
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("HTTP", "Unexpected error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
