package dto

import (
	"time"

	"github.com/google/uuid"
)

type CollegeResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Position  int        `json:"position"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateCollegeRequest struct {
	Name     string `json:"name" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=applying researching not_applying"`
	Position *int   `json:"position" validate:"omitempty,min=0"`
}

type UpdateCollegeStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=applying researching not_applying"`
}

type UpdateCollegePositionRequest struct {
	Id       uuid.UUID
	Position *int `json:"position" validate:"required,min=0"`
}

type DeleteCollegeResponse struct {
	Deleted bool `json:"deleted"`
}
