package serverutils

import (
	"time"

	"collegeplan-be/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SetSessionCookie attaches the session token to the response. HTTP-only and
// SameSite=Lax always; Secure only outside development so local HTTP works.
func SetSessionCookie(ctx *fiber.Ctx, name, token, environment string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Expires:  time.Now().Add(session.TTL),
		HTTPOnly: true,
		Secure:   environment == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func ClearSessionCookie(ctx *fiber.Ctx, name string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
