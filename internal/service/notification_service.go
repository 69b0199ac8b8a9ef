package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"collegeplan-be/internal/model"
	"collegeplan-be/internal/pkg/logger"
	"collegeplan-be/internal/repository"
	"collegeplan-be/pkg/events"
	pktNats "collegeplan-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
}

// notificationTemplate maps an event type to the rendered notification.
// Placeholders of the form {key} are filled from the event payload.
type notificationTemplate struct {
	Title    string
	Template string
}

var notificationTemplates = map[string]notificationTemplate{
	"USER_REGISTERED": {
		Title:    "Welcome!",
		Template: "Your account is ready. Add colleges to your list or start a chat to get going.",
	},
	"ADVISOR_RECOMMENDATION_ADDED": {
		Title:    "New recommendation from your advisor",
		Template: "{advisor_name} suggested {college_name} for your list.",
	},
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	tmpl, ok := notificationTemplates[typeCode]
	if !ok {
		// Events without a template (e.g. USER_LOGIN) are audit-only.
		return nil
	}

	uidStr, ok := event.Payload()["user_id"].(string)
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No user_id in payload for event %s", typeCode), nil)
		return nil
	}
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Bad user_id in payload for event %s", typeCode), nil)
		return nil
	}

	notif := s.buildNotification(userID, typeCode, tmpl, event)

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", "Error saving notification", map[string]interface{}{
			"user_id": userID,
			"error":   err,
		})
		return err // NATS will retry
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}
	return nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode string, tmpl notificationTemplate, event events.Event) model.Notification {
	msg := tmpl.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	metaJSON, _ := json.Marshal(payload)

	return model.Notification{
		ID:       uuid.New(),
		UserID:   userID,
		TypeCode: typeCode,
		Title:    tmpl.Title,
		Message:  msg,
		Metadata: datatypes.JSON(metaJSON),
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
