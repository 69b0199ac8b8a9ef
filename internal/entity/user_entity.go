package entity

import (
	"time"

	"github.com/google/uuid"
)

// Onboarding holds the seven free-text survey answers captured at
// registration. Absent answers are stored as the skipped sentinel.
type Onboarding struct {
	Programs      string
	CurrentSchool string
	GradeLevel    string
	Academics     string
	Location      string
	Financial     string
	Priorities    string
}

type User struct {
	Id                 uuid.UUID
	Username           string
	PasswordHash       string
	ProfileDescription *string
	Onboarding         Onboarding
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
