package mapper

import (
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/model"
)

type AdvisorMapper struct{}

func NewAdvisorMapper() *AdvisorMapper {
	return &AdvisorMapper{}
}

func (m *AdvisorMapper) ToEntity(a *model.Advisor) *entity.Advisor {
	if a == nil {
		return nil
	}
	return &entity.Advisor{
		Id:         a.Id,
		UserId:     a.UserId,
		Name:       a.Name,
		Type:       entity.AdvisorType(a.Type),
		ShareToken: a.ShareToken,
		Email:      a.Email,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (m *AdvisorMapper) ToModel(a *entity.Advisor) *model.Advisor {
	if a == nil {
		return nil
	}
	return &model.Advisor{
		Id:         a.Id,
		UserId:     a.UserId,
		Name:       a.Name,
		Type:       string(a.Type),
		ShareToken: a.ShareToken,
		Email:      a.Email,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (m *AdvisorMapper) SharedToEntity(s *model.SharedChatSession) *entity.SharedChatSession {
	if s == nil {
		return nil
	}
	return &entity.SharedChatSession{
		Id:        s.Id,
		AdvisorId: s.AdvisorId,
		SessionId: s.SessionId,
		CreatedAt: s.CreatedAt,
	}
}

func (m *AdvisorMapper) SharedToModel(s *entity.SharedChatSession) *model.SharedChatSession {
	if s == nil {
		return nil
	}
	return &model.SharedChatSession{
		Id:        s.Id,
		AdvisorId: s.AdvisorId,
		SessionId: s.SessionId,
		CreatedAt: s.CreatedAt,
	}
}
