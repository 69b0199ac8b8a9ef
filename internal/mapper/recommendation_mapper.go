package mapper

import (
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/model"
)

type RecommendationMapper struct{}

func NewRecommendationMapper() *RecommendationMapper {
	return &RecommendationMapper{}
}

func (m *RecommendationMapper) ToEntity(r *model.CollegeRecommendation) *entity.CollegeRecommendation {
	if r == nil {
		return nil
	}
	return &entity.CollegeRecommendation{
		Id:             r.Id,
		UserId:         r.UserId,
		Name:           r.Name,
		Description:    r.Description,
		Reason:         r.Reason,
		AcceptanceRate: r.AcceptanceRate,
		RecommendedBy:  r.RecommendedBy,
		AdvisorNotes:   r.AdvisorNotes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *RecommendationMapper) ToModel(r *entity.CollegeRecommendation) *model.CollegeRecommendation {
	if r == nil {
		return nil
	}
	return &model.CollegeRecommendation{
		Id:             r.Id,
		UserId:         r.UserId,
		Name:           r.Name,
		Description:    r.Description,
		Reason:         r.Reason,
		AcceptanceRate: r.AcceptanceRate,
		RecommendedBy:  r.RecommendedBy,
		AdvisorNotes:   r.AdvisorNotes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *RecommendationMapper) ToEntities(models []*model.CollegeRecommendation) []*entity.CollegeRecommendation {
	entities := make([]*entity.CollegeRecommendation, len(models))
	for i, r := range models {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
