package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageFeedback is an append-only thumbs up/down on an AI message. The
// message content is copied so the row stays meaningful if the session is
// deleted later.
type MessageFeedback struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	MessageId      uuid.UUID
	MessageContent string
	IsPositive     bool
	CreatedAt      time.Time
}
