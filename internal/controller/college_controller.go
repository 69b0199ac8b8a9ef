package controller

import (
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/pkg/serverutils"
	"collegeplan-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICollegeController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	List(ctx *fiber.Ctx) error
	ListByStatus(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	UpdatePosition(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type collegeController struct {
	collegeService service.ICollegeService
}

func NewCollegeController(collegeService service.ICollegeService) ICollegeController {
	return &collegeController{
		collegeService: collegeService,
	}
}

func (c *collegeController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	h := r.Group("/colleges")
	h.Use(sessionMW)
	h.Get("", c.List)
	h.Get("/status/:status", c.ListByStatus)
	h.Post("", c.Create)
	h.Patch("/:id/status", c.UpdateStatus)
	h.Patch("/:id/position", c.UpdatePosition)
	h.Delete("/:id", c.Delete)
}

func (c *collegeController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.collegeService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list colleges", res))
}

func (c *collegeController) ListByStatus(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	status := ctx.Params("status")

	res, err := c.collegeService.ListByStatus(ctx.Context(), userId, status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list colleges by status", res))
}

func (c *collegeController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateCollegeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.collegeService.Add(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create college", res))
}

func (c *collegeController) UpdateStatus(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateCollegeStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.collegeService.UpdateStatus(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update college status", res))
}

func (c *collegeController) UpdatePosition(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateCollegePositionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.collegeService.UpdatePosition(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update college position", res))
}

func (c *collegeController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	deleted, err := c.collegeService.Delete(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete college", dto.DeleteCollegeResponse{Deleted: deleted}))
}
