package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attachment is the fixed file shape carried by a chat message. Binary
// content lives on disk under the URL; it is never stored inline.
type Attachment struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type ChatMessage struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	Content     string
	Sender      string // constant.ChatSenderUser or constant.ChatSenderAI
	Attachments []Attachment
	CreatedAt   time.Time
}
