package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	ProfileDescription *string   `gorm:"type:text"`

	// Onboarding survey answers, sentinel-filled when skipped.
	OnboardingPrograms      string `gorm:"type:text;not null"`
	OnboardingCurrentSchool string `gorm:"type:text;not null"`
	OnboardingGradeLevel    string `gorm:"type:text;not null"`
	OnboardingAcademics     string `gorm:"type:text;not null"`
	OnboardingLocation      string `gorm:"type:text;not null"`
	OnboardingFinancial     string `gorm:"type:text;not null"`
	OnboardingPriorities    string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
