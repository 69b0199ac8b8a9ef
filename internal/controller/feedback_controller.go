package controller

import (
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/pkg/serverutils"
	"collegeplan-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	Submit(ctx *fiber.Ctx) error
}

type feedbackController struct {
	chatService service.IChatService
}

func NewFeedbackController(chatService service.IChatService) IFeedbackController {
	return &feedbackController{
		chatService: chatService,
	}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	r.Post("/message-feedback", sessionMW, c.Submit)
}

func (c *feedbackController) Submit(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SubmitFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.chatService.SubmitFeedback(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit feedback", res))
}
