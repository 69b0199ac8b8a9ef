package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdvisorType string

const (
	AdvisorTypeSchoolCounselor  AdvisorType = "school_counselor"
	AdvisorTypePrivateCounselor AdvisorType = "private_counselor"
	AdvisorTypeParent           AdvisorType = "parent"
	AdvisorTypeSibling          AdvisorType = "sibling"
	AdvisorTypeOther            AdvisorType = "other"
)

func ValidAdvisorType(t AdvisorType) bool {
	switch t {
	case AdvisorTypeSchoolCounselor, AdvisorTypePrivateCounselor,
		AdvisorTypeParent, AdvisorTypeSibling, AdvisorTypeOther:
		return true
	}
	return false
}

type Advisor struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Name       string
	Type       AdvisorType
	ShareToken uuid.UUID // immutable, server-generated
	Email      *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SharedChatSession grants one advisor read access to one chat session.
type SharedChatSession struct {
	Id        uuid.UUID
	AdvisorId uuid.UUID
	SessionId uuid.UUID
	CreatedAt time.Time
}
