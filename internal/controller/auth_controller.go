package controller

import (
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/pkg/serverutils"
	"collegeplan-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	cookieName  string
	environment string
}

func NewAuthController(authService service.IAuthService, cookieName, environment string) IAuthController {
	return &authController{
		authService: authService,
		cookieName:  cookieName,
		environment: environment,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
	r.Post("/logout", c.Logout)
	r.Get("/me", sessionMW, c.Me)
	// Legacy alias kept for older clients.
	r.Get("/user", sessionMW, c.Me)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, token, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	serverutils.SetSessionCookie(ctx, c.cookieName, token, c.environment)
	return ctx.JSON(serverutils.SuccessResponse("Success register user", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, token, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	serverutils.SetSessionCookie(ctx, c.cookieName, token, c.environment)
	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

// Logout destroys the server-side session if one exists. Always clears the
// cookie, so calling it twice is harmless.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	token := ctx.Cookies(c.cookieName)
	if token != "" {
		if err := c.authService.Logout(ctx.Context(), token); err != nil {
			return err
		}
	}

	serverutils.ClearSessionCookie(ctx, c.cookieName)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success logout", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.authService.CurrentUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get current user", res))
}
