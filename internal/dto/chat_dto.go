package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatSessionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateSessionRequest struct {
	Title string `json:"title" validate:"omitempty,max=255"`
}

type RenameSessionRequest struct {
	Id    uuid.UUID
	Title string `json:"title" validate:"required,max=255"`
}

type AttachmentDTO struct {
	Filename    string `json:"filename" validate:"required"`
	URL         string `json:"url" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Size        int64  `json:"size" validate:"min=0"`
}

type ChatMessageResponse struct {
	Id          uuid.UUID       `json:"id"`
	SessionId   uuid.UUID       `json:"session_id"`
	Content     string          `json:"content"`
	Sender      string          `json:"sender"`
	Attachments []AttachmentDTO `json:"attachments,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type SendMessageRequest struct {
	SessionId           *uuid.UUID      `json:"session_id,omitempty"`
	Content             string          `json:"content" validate:"required"`
	Attachments         []AttachmentDTO `json:"attachments,omitempty" validate:"dive"`
	ShareWithAdvisorIds []uuid.UUID     `json:"share_with_advisor_ids,omitempty"`
	UseWebSearch        bool            `json:"use_web_search"`
	ExtendThinking      bool            `json:"extend_thinking"`
}

type SendMessageResponse struct {
	SessionId      uuid.UUID            `json:"session_id"`
	UserMessage    *ChatMessageResponse `json:"user_message"`
	AiMessage      *ChatMessageResponse `json:"ai_message,omitempty"`
	ProfileUpdated bool                 `json:"profile_updated"`
	SearchQueries  []string             `json:"search_queries,omitempty"`
	AiError        string               `json:"ai_error,omitempty"`
}
