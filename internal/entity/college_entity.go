package entity

import (
	"time"

	"github.com/google/uuid"
)

type CollegeStatus string

const (
	CollegeStatusApplying    CollegeStatus = "applying"
	CollegeStatusResearching CollegeStatus = "researching"
	CollegeStatusNotApplying CollegeStatus = "not_applying"
)

// ValidCollegeStatus reports whether s is one of the three kanban columns.
func ValidCollegeStatus(s CollegeStatus) bool {
	switch s {
	case CollegeStatusApplying, CollegeStatusResearching, CollegeStatusNotApplying:
		return true
	}
	return false
}

type College struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Status    CollegeStatus
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
