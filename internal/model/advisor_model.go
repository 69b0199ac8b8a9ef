package model

import (
	"time"

	"github.com/google/uuid"
)

type Advisor struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Type       string    `gorm:"type:varchar(30);not null"`
	ShareToken uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email      *string   `gorm:"type:varchar(255)"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Advisor) TableName() string {
	return "advisors"
}

type SharedChatSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdvisorId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shared_sessions_pair,priority:1"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shared_sessions_pair,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SharedChatSession) TableName() string {
	return "shared_chat_sessions"
}
