package handler

import (
	"encoding/json"
	"errors"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/model"
	"collegeplan-be/internal/pkg/logger"
	"collegeplan-be/internal/pkg/serverutils"
	"collegeplan-be/internal/service"
	"collegeplan-be/internal/session"
	internalWS "collegeplan-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service    *service.NotificationService
	hub        *internalWS.Hub
	sessions   session.Store
	cookieName string
	logger     logger.ILogger
}

func NewNotificationHandler(svc *service.NotificationService, hub *internalWS.Hub, sessions session.Store, cookieName string, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service:    svc,
		hub:        hub,
		sessions:   sessions,
		cookieName: cookieName,
		logger:     log,
	}
}

// ServeWs upgrades the connection after authenticating the handshake from
// the session cookie. Browsers send cookies on websocket upgrades, so no
// token plumbing is needed.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	token := c.Cookies(h.cookieName)
	if token == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	userID, err := h.sessions.Get(c.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return apperrors.NewUnauthorized("authentication required")
		}
		return apperrors.NewInternal(err)
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *NotificationHandler) GetNotifications(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := h.service.GetNotifications(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	unread, err := h.service.GetUnreadCount(ctx.Context(), userId)
	if err != nil {
		return err
	}

	res := dto.NotificationListResponse{
		Notifications: toNotificationResponses(notifications),
		Total:         total,
		UnreadCount:   unread,
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notifications", res))
}

func (h *NotificationHandler) GetUnreadCount(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	count, err := h.service.GetUnreadCount(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get unread count", fiber.Map{"count": count}))
}

func (h *NotificationHandler) MarkAsRead(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewValidation("invalid notification id")
	}

	if err := h.service.MarkAsRead(ctx.Context(), id, userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark notification as read", nil))
}

func (h *NotificationHandler) MarkAllAsRead(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := h.service.MarkAllAsRead(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark all notifications as read", nil))
}

func toNotificationResponses(notifications []model.Notification) []dto.NotificationResponse {
	res := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := dto.NotificationResponse{
			Id:        n.ID,
			TypeCode:  n.TypeCode,
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		}
		if len(n.Metadata) > 0 {
			_ = json.Unmarshal(n.Metadata, &item.Metadata)
		}
		res = append(res, item)
	}
	return res
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	notif := r.Group("/notifications")
	notif.Use(sessionMW)
	notif.Get("", h.GetNotifications)
	notif.Get("/unread-count", h.GetUnreadCount)
	notif.Patch("/:id/read", h.MarkAsRead)
	notif.Patch("/read-all", h.MarkAllAsRead)

	// WebSocket authenticates its own handshake from the cookie.
	r.Get("/ws", h.ServeWs)
}
