package service

import (
	"context"
	"fmt"
	"strings"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/constant"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/repository/specification"
	"collegeplan-be/internal/repository/unitofwork"
	"collegeplan-be/pkg/llm"

	"github.com/google/uuid"
)

type IUserService interface {
	GenerateProfile(ctx context.Context, userId uuid.UUID) (*dto.GenerateProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	ai         llm.Provider
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, ai llm.Provider) IUserService {
	return &userService{
		uowFactory: uowFactory,
		ai:         ai,
	}
}

// GenerateProfile builds the initial profile description from the seven
// onboarding answers and persists it.
func (s *userService) GenerateProfile(ctx context.Context, userId uuid.UUID) (*dto.GenerateProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	prompt := fmt.Sprintf(constant.ProfileFromOnboardingPromptV1,
		user.Onboarding.Programs,
		user.Onboarding.CurrentSchool,
		user.Onboarding.GradeLevel,
		user.Onboarding.Academics,
		user.Onboarding.Location,
		user.Onboarding.Financial,
		user.Onboarding.Priorities,
	)

	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, wrapAIError(err)
	}

	description := strings.TrimSpace(text)
	if err := uow.UserRepository().UpdateProfileDescription(ctx, userId, description); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &dto.GenerateProfileResponse{ProfileDescription: description}, nil
}
