package mapper

import (
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                 u.Id,
		Username:           u.Username,
		PasswordHash:       u.PasswordHash,
		ProfileDescription: u.ProfileDescription,
		Onboarding: entity.Onboarding{
			Programs:      u.OnboardingPrograms,
			CurrentSchool: u.OnboardingCurrentSchool,
			GradeLevel:    u.OnboardingGradeLevel,
			Academics:     u.OnboardingAcademics,
			Location:      u.OnboardingLocation,
			Financial:     u.OnboardingFinancial,
			Priorities:    u.OnboardingPriorities,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                      u.Id,
		Username:                u.Username,
		PasswordHash:            u.PasswordHash,
		ProfileDescription:      u.ProfileDescription,
		OnboardingPrograms:      u.Onboarding.Programs,
		OnboardingCurrentSchool: u.Onboarding.CurrentSchool,
		OnboardingGradeLevel:    u.Onboarding.GradeLevel,
		OnboardingAcademics:     u.Onboarding.Academics,
		OnboardingLocation:      u.Onboarding.Location,
		OnboardingFinancial:     u.Onboarding.Financial,
		OnboardingPriorities:    u.Onboarding.Priorities,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
	}
}
