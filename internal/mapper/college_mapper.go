package mapper

import (
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/model"
)

type CollegeMapper struct{}

func NewCollegeMapper() *CollegeMapper {
	return &CollegeMapper{}
}

func (m *CollegeMapper) ToEntity(c *model.College) *entity.College {
	if c == nil {
		return nil
	}
	return &entity.College{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		Status:    entity.CollegeStatus(c.Status),
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CollegeMapper) ToModel(c *entity.College) *model.College {
	if c == nil {
		return nil
	}
	return &model.College{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		Status:    string(c.Status),
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CollegeMapper) ToEntities(models []*model.College) []*entity.College {
	entities := make([]*entity.College, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
