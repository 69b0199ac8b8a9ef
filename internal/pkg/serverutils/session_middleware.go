package serverutils

import (
	"errors"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware resolves the session cookie into a user id and stores it
// in ctx.Locals("user_id") for downstream handlers. Requests without a valid
// session fail with UnauthorizedError.
func SessionMiddleware(store session.Store, cookieName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies(cookieName)
		if token == "" {
			return apperrors.NewUnauthorized("authentication required")
		}

		userID, err := store.Get(ctx.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return apperrors.NewUnauthorized("authentication required")
			}
			return apperrors.NewInternal(err)
		}

		ctx.Locals("user_id", userID.String())
		return ctx.Next()
	}
}
