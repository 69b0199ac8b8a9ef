package model

import (
	"time"

	"github.com/google/uuid"
)

type CollegeRecommendation struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text;not null"`
	Reason         string    `gorm:"type:text;not null"`
	AcceptanceRate *float64
	RecommendedBy  *string   `gorm:"type:varchar(255)"`
	AdvisorNotes   *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (CollegeRecommendation) TableName() string {
	return "college_recommendations"
}
