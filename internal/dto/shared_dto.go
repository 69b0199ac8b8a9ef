package dto

import (
	"time"

	"github.com/google/uuid"
)

// DTOs for the advisor-facing read-only views resolved by share token.

type SharedUserDTO struct {
	Username           string  `json:"username"`
	ProfileDescription *string `json:"profile_description"`
}

type SharedAdvisorDTO struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

type SharedSessionDTO struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type SharedProfileViewResponse struct {
	Advisor            SharedAdvisorDTO         `json:"advisor"`
	User               SharedUserDTO            `json:"user"`
	Colleges           []CollegeResponse        `json:"colleges"`
	Recommendations    []RecommendationResponse `json:"recommendations"`
	SharedChatSessions []SharedSessionDTO       `json:"shared_chat_sessions"`
}

type AdvisorRecommendationRequest struct {
	CollegeName  string  `json:"college_name" validate:"required"`
	AdvisorNotes *string `json:"advisor_notes,omitempty"`
}
