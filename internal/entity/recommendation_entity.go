package entity

import (
	"time"

	"github.com/google/uuid"
)

type CollegeRecommendation struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Name           string
	Description    string
	Reason         string
	AcceptanceRate *float64 // 0-100
	RecommendedBy  *string
	AdvisorNotes   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
