package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	MessageId      uuid.UUID `json:"message_id" validate:"required"`
	MessageContent string    `json:"message_content" validate:"required"`
	IsPositive     *bool     `json:"is_positive" validate:"required"`
}

type FeedbackResponse struct {
	Id         uuid.UUID `json:"id"`
	MessageId  uuid.UUID `json:"message_id"`
	IsPositive bool      `json:"is_positive"`
	CreatedAt  time.Time `json:"created_at"`
}
