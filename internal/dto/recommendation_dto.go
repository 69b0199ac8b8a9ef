package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Reason         string    `json:"reason"`
	AcceptanceRate *float64  `json:"acceptance_rate"`
	RecommendedBy  *string   `json:"recommended_by"`
	AdvisorNotes   *string   `json:"advisor_notes"`
	CreatedAt      time.Time `json:"created_at"`
}

type GenerateRecommendationsRequest struct {
	Preference string `json:"preference" validate:"omitempty,max=2000"`
}

type ConvertRecommendationRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=applying researching not_applying"`
}

type DeleteRecommendationResponse struct {
	Deleted bool `json:"deleted"`
}
