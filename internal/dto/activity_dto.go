package dto

import "github.com/google/uuid"

// ProfileActivityMessage is the watermill payload recorded whenever a chat
// turn rewrites the stored profile description.
type ProfileActivityMessage struct {
	UserId    uuid.UUID `json:"user_id"`
	SessionId uuid.UUID `json:"session_id"`
	Detail    string    `json:"detail"`
}
