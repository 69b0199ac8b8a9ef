package model

import (
	"time"

	"github.com/google/uuid"
)

type College struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_colleges_user_status,priority:1"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'researching';index:idx_colleges_user_status,priority:2"`
	Position  int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (College) TableName() string {
	return "colleges"
}
