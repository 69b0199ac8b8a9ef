package controller

import (
	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/pkg/serverutils"
	"collegeplan-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// sharedController serves the advisor-facing share-link endpoints. These are
// public: access is gated by the share token alone, never by a session.
type ISharedController interface {
	RegisterRoutes(r fiber.Router)
	ProfileView(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
	AddRecommendation(ctx *fiber.Ctx) error
}

type sharedController struct {
	advisorService service.IAdvisorService
}

func NewSharedController(advisorService service.IAdvisorService) ISharedController {
	return &sharedController{
		advisorService: advisorService,
	}
}

func (c *sharedController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/shared")
	h.Get("/:token", c.ProfileView)
	h.Get("/:token/chat/:sessionId/messages", c.Messages)
	h.Post("/:token/recommendations", c.AddRecommendation)
}

// parseShareToken treats malformed tokens the same as unknown ones so the
// endpoint never reveals whether a token exists.
func parseShareToken(ctx *fiber.Ctx) (uuid.UUID, error) {
	token, err := uuid.Parse(ctx.Params("token"))
	if err != nil {
		return uuid.Nil, apperrors.NewNotFound("share link not found")
	}
	return token, nil
}

func (c *sharedController) ProfileView(ctx *fiber.Ctx) error {
	token, err := parseShareToken(ctx)
	if err != nil {
		return err
	}

	res, err := c.advisorService.SharedProfileView(ctx.Context(), token)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get shared profile", res))
}

func (c *sharedController) Messages(ctx *fiber.Ctx) error {
	token, err := parseShareToken(ctx)
	if err != nil {
		return err
	}

	sessionId, _ := uuid.Parse(ctx.Params("sessionId"))

	res, err := c.advisorService.SharedMessages(ctx.Context(), token, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get shared messages", res))
}

func (c *sharedController) AddRecommendation(ctx *fiber.Ctx) error {
	token, err := parseShareToken(ctx)
	if err != nil {
		return err
	}

	var req dto.AdvisorRecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.advisorService.AddRecommendationAsAdvisor(ctx.Context(), token, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add recommendation", res))
}
