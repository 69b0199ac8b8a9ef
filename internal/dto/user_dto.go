package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id                 uuid.UUID         `json:"id"`
	Username           string            `json:"username"`
	ProfileDescription *string           `json:"profile_description"`
	Onboarding         OnboardingPayload `json:"onboarding"`
	CreatedAt          time.Time         `json:"created_at"`
}

type GenerateProfileResponse struct {
	ProfileDescription string `json:"profile_description"`
}
