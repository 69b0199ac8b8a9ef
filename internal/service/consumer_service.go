package service

import (
	"context"
	"encoding/json"
	"log"

	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/model"
	"collegeplan-be/internal/repository"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains profile-activity messages off the in-process
// watermill channel and records them as notifications.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	repo      repository.NotificationRepository
	delivery  NotificationDelivery
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	repo repository.NotificationRepository,
	delivery NotificationDelivery,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		repo:      repo,
		delivery:  delivery,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProfileActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal profile activity message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	metaJSON, _ := json.Marshal(map[string]interface{}{
		"session_id": payload.SessionId.String(),
	})

	notif := model.Notification{
		ID:       uuid.New(),
		UserID:   payload.UserId,
		TypeCode: "PROFILE_UPDATED",
		Title:    "Profile updated",
		Message:  payload.Detail,
		Metadata: datatypes.JSON(metaJSON),
	}

	if err := cs.repo.CreateNotification(ctx, &notif); err != nil {
		log.Printf("[ERROR] Failed to save profile activity notification: %v", err)
		msg.Nack() // Retriable
		return
	}

	if cs.delivery != nil {
		cs.delivery.Send(payload.UserId, notif)
	}
	msg.Ack()
}
