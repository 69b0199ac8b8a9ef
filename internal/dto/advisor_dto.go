package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdvisorResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	ShareToken uuid.UUID  `json:"share_token"`
	Email      *string    `json:"email,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type CreateAdvisorRequest struct {
	Name  string  `json:"name" validate:"required"`
	Type  string  `json:"type" validate:"required,oneof=school_counselor private_counselor parent sibling other"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type SetAdvisorActiveRequest struct {
	Id       uuid.UUID
	IsActive *bool `json:"is_active" validate:"required"`
}

type ShareSessionsRequest struct {
	AdvisorId  uuid.UUID
	SessionIds []uuid.UUID `json:"session_ids" validate:"required,min=1"`
}

type SharedSessionIdsResponse struct {
	SessionIds []uuid.UUID `json:"session_ids"`
}

type DeleteAdvisorResponse struct {
	Deleted bool `json:"deleted"`
}
