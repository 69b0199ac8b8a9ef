package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageFeedback struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageId      uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageContent string    `gorm:"type:text;not null"`
	IsPositive     bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (MessageFeedback) TableName() string {
	return "message_feedback"
}
