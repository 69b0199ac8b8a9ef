package service

import (
	"context"
	"time"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/constant"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/pkg/logger"
	"collegeplan-be/internal/repository/specification"
	"collegeplan-be/internal/repository/unitofwork"
	"collegeplan-be/internal/session"

	"collegeplan-be/pkg/events"
	pktNats "collegeplan-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	Logout(ctx context.Context, sessionToken string) error
	CurrentUser(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       session.Store
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessions session.Store, eventPublisher *pktNats.Publisher, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// onboardingFromRequest fills every skipped answer with the sentinel string.
func onboardingFromRequest(payload *dto.OnboardingPayload) entity.Onboarding {
	ob := entity.Onboarding{
		Programs:      constant.OnboardingSkipped,
		CurrentSchool: constant.OnboardingSkipped,
		GradeLevel:    constant.OnboardingSkipped,
		Academics:     constant.OnboardingSkipped,
		Location:      constant.OnboardingSkipped,
		Financial:     constant.OnboardingSkipped,
		Priorities:    constant.OnboardingSkipped,
	}
	if payload == nil {
		return ob
	}
	if payload.Programs != "" {
		ob.Programs = payload.Programs
	}
	if payload.CurrentSchool != "" {
		ob.CurrentSchool = payload.CurrentSchool
	}
	if payload.GradeLevel != "" {
		ob.GradeLevel = payload.GradeLevel
	}
	if payload.Academics != "" {
		ob.Academics = payload.Academics
	}
	if payload.Location != "" {
		ob.Location = payload.Location
	}
	if payload.Financial != "" {
		ob.Financial = payload.Financial
	}
	if payload.Priorities != "" {
		ob.Priorities = payload.Priorities
	}
	return ob
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:                 user.Id,
		Username:           user.Username,
		ProfileDescription: user.ProfileDescription,
		Onboarding: dto.OnboardingPayload{
			Programs:      user.Onboarding.Programs,
			CurrentSchool: user.Onboarding.CurrentSchool,
			GradeLevel:    user.Onboarding.GradeLevel,
			Academics:     user.Onboarding.Academics,
			Location:      user.Onboarding.Location,
			Financial:     user.Onboarding.Financial,
			Priorities:    user.Onboarding.Priorities,
		},
		CreatedAt: user.CreatedAt,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}
	if existing != nil {
		return nil, "", apperrors.NewConflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Onboarding:   onboardingFromRequest(req.Onboarding),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, "", apperrors.NewInternal(err)
	}

	token, err := s.sessions.Create(ctx, user.Id)
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}

	s.publish(ctx, "USER_REGISTERED", map[string]interface{}{
		"user_id":  user.Id.String(),
		"username": user.Username,
	})

	return toUserResponse(user), token, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}
	// Same generic failure whether the username or the password was wrong.
	if user == nil {
		return nil, "", apperrors.NewUnauthorized("invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", apperrors.NewUnauthorized("invalid username or password")
	}

	token, err := s.sessions.Create(ctx, user.Id)
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}

	s.publish(ctx, "USER_LOGIN", map[string]interface{}{
		"user_id": user.Id.String(),
		"time":    time.Now().Format(time.RFC822),
	})

	return toUserResponse(user), token, nil
}

func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	// Deleting an already-gone session is a no-op, keeping logout idempotent.
	if err := s.sessions.Delete(ctx, sessionToken); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewUnauthorized("session user no longer exists")
	}
	return toUserResponse(user), nil
}

func (s *authService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		// Notification delivery is auxiliary; never fail the request for it.
		s.logger.Warn("AuthService", "Failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
