package controller

import (
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/pkg/serverutils"
	"collegeplan-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdvisorController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	SetActive(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ShareChats(ctx *fiber.Ctx) error
	UnshareChats(ctx *fiber.Ctx) error
	SharedChats(ctx *fiber.Ctx) error
}

type advisorController struct {
	advisorService service.IAdvisorService
}

func NewAdvisorController(advisorService service.IAdvisorService) IAdvisorController {
	return &advisorController{
		advisorService: advisorService,
	}
}

func (c *advisorController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	h := r.Group("/advisors")
	h.Use(sessionMW)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Patch("/:id/status", c.SetActive)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/share-chats", c.ShareChats)
	h.Post("/:id/unshare-chats", c.UnshareChats)
	h.Get("/:id/shared-chats", c.SharedChats)
}

func (c *advisorController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.advisorService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list advisors", res))
}

func (c *advisorController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateAdvisorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.advisorService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create advisor", res))
}

func (c *advisorController) SetActive(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.SetAdvisorActiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.advisorService.SetActive(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update advisor status", res))
}

func (c *advisorController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	deleted, err := c.advisorService.Delete(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete advisor", dto.DeleteAdvisorResponse{Deleted: deleted}))
}

func (c *advisorController) ShareChats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.ShareSessionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.AdvisorId = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	if err := c.advisorService.ShareSessions(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success share chat sessions", nil))
}

func (c *advisorController) UnshareChats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.ShareSessionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.AdvisorId = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	if err := c.advisorService.UnshareSessions(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success unshare chat sessions", nil))
}

func (c *advisorController) SharedChats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	sessionIds, err := c.advisorService.SharedSessionIds(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list shared chat sessions", dto.SharedSessionIdsResponse{SessionIds: sessionIds}))
}
