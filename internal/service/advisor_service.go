package service

import (
	"context"
	"fmt"
	"time"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/pkg/logger"
	"collegeplan-be/internal/pkg/mailer"
	"collegeplan-be/internal/repository/specification"
	"collegeplan-be/internal/repository/unitofwork"

	"collegeplan-be/pkg/events"
	pktNats "collegeplan-be/pkg/nats"

	"github.com/google/uuid"
)

type IAdvisorService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.AdvisorResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAdvisorRequest) (*dto.AdvisorResponse, error)
	SetActive(ctx context.Context, userId uuid.UUID, req *dto.SetAdvisorActiveRequest) (*dto.AdvisorResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, advisorId uuid.UUID) (bool, error)
	ShareSessions(ctx context.Context, userId uuid.UUID, req *dto.ShareSessionsRequest) error
	UnshareSessions(ctx context.Context, userId uuid.UUID, req *dto.ShareSessionsRequest) error
	SharedSessionIds(ctx context.Context, userId uuid.UUID, advisorId uuid.UUID) ([]uuid.UUID, error)

	// Token-gated reads used by the public share endpoints. Every call
	// re-resolves the token so deactivation takes effect immediately.
	SharedProfileView(ctx context.Context, token uuid.UUID) (*dto.SharedProfileViewResponse, error)
	SharedMessages(ctx context.Context, token uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	AddRecommendationAsAdvisor(ctx context.Context, token uuid.UUID, req *dto.AdvisorRecommendationRequest) (*dto.RecommendationResponse, error)
}

type advisorService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	clientURL      string
	logger         logger.ILogger
}

func NewAdvisorService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	clientURL string,
	log logger.ILogger,
) IAdvisorService {
	return &advisorService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		clientURL:      clientURL,
		logger:         log,
	}
}

func toAdvisorResponse(a *entity.Advisor) *dto.AdvisorResponse {
	updatedAt := a.UpdatedAt
	return &dto.AdvisorResponse{
		Id:         a.Id,
		Name:       a.Name,
		Type:       string(a.Type),
		ShareToken: a.ShareToken,
		Email:      a.Email,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  &updatedAt,
	}
}

func (s *advisorService) List(ctx context.Context, userId uuid.UUID) ([]*dto.AdvisorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisors, err := uow.AdvisorRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	out := make([]*dto.AdvisorResponse, 0, len(advisors))
	for _, a := range advisors {
		out = append(out, toAdvisorResponse(a))
	}
	return out, nil
}

func (s *advisorService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAdvisorRequest) (*dto.AdvisorResponse, error) {
	advisorType := entity.AdvisorType(req.Type)
	if !entity.ValidAdvisorType(advisorType) {
		return nil, apperrors.NewValidation("unknown advisor type: " + req.Type)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor := &entity.Advisor{
		Id:         uuid.New(),
		UserId:     userId,
		Name:       req.Name,
		Type:       advisorType,
		ShareToken: uuid.New(), // server-generated, immutable
		Email:      req.Email,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uow.AdvisorRepository().Create(ctx, advisor); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	// Invitation email is best-effort; the share link also appears in the UI.
	if req.Email != nil && *req.Email != "" && s.emailService != nil {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err == nil && user != nil {
			link := fmt.Sprintf("%s/shared/%s", s.clientURL, advisor.ShareToken)
			if err := s.emailService.SendShareLink(*req.Email, advisor.Name, user.Username, link); err != nil {
				s.logger.Warn("AdvisorService", "Failed to send share link", map[string]interface{}{
					"email": *req.Email,
					"error": err.Error(),
				})
			}
		}
	}

	return toAdvisorResponse(advisor), nil
}

// SetActive toggles the share link. The token and the shared-session
// junctions are preserved so reactivation restores prior state.
func (s *advisorService) SetActive(ctx context.Context, userId uuid.UUID, req *dto.SetAdvisorActiveRequest) (*dto.AdvisorResponse, error) {
	if req.IsActive == nil {
		return nil, apperrors.NewValidation("is_active is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := uow.AdvisorRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if advisor == nil {
		return nil, apperrors.NewNotFound("advisor not found")
	}

	advisor.IsActive = *req.IsActive
	advisor.UpdatedAt = time.Now()
	if err := uow.AdvisorRepository().Update(ctx, advisor); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toAdvisorResponse(advisor), nil
}

func (s *advisorService) Delete(ctx context.Context, userId uuid.UUID, advisorId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := uow.AdvisorRepository().FindOne(ctx,
		specification.ByID{ID: advisorId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return false, apperrors.NewInternal(err)
	}
	if advisor == nil {
		return false, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return false, apperrors.NewInternal(err)
	}
	defer uow.Rollback()

	if err := uow.SharedChatSessionRepository().DeleteByAdvisorId(ctx, advisorId); err != nil {
		return false, apperrors.NewInternal(err)
	}
	deleted, err := uow.AdvisorRepository().Delete(ctx, advisorId)
	if err != nil {
		return false, apperrors.NewInternal(err)
	}

	if err := uow.Commit(); err != nil {
		return false, apperrors.NewInternal(err)
	}
	return deleted, nil
}

// resolveByToken is the sole gate for the public share endpoints. Unknown
// token and deactivated advisor are indistinguishable to the caller.
func (s *advisorService) resolveByToken(ctx context.Context, uow unitofwork.UnitOfWork, token uuid.UUID) (*entity.Advisor, error) {
	advisor, err := uow.AdvisorRepository().FindOne(ctx,
		specification.ByShareToken{Token: token},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return advisor, nil
}

func (s *advisorService) ShareSessions(ctx context.Context, userId uuid.UUID, req *dto.ShareSessionsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := uow.AdvisorRepository().FindOne(ctx,
		specification.ByID{ID: req.AdvisorId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if advisor == nil {
		return apperrors.NewNotFound("advisor not found")
	}

	// Every session must belong to the requesting user before anything is
	// shared; one foreign id fails the whole call.
	for _, sessionId := range req.SessionIds {
		chatSession, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: sessionId},
		)
		if err != nil {
			return apperrors.NewInternal(err)
		}
		if chatSession == nil {
			return apperrors.NewNotFound(fmt.Sprintf("chat session %s not found", sessionId))
		}
		if chatSession.UserId != userId {
			return apperrors.NewForbidden("cannot share a chat session you do not own")
		}
	}

	for _, sessionId := range req.SessionIds {
		exists, err := uow.SharedChatSessionRepository().Exists(ctx, advisor.Id, sessionId)
		if err != nil {
			return apperrors.NewInternal(err)
		}
		if exists {
			continue // idempotent: never duplicate a pair
		}
		shared := &entity.SharedChatSession{
			Id:        uuid.New(),
			AdvisorId: advisor.Id,
			SessionId: sessionId,
			CreatedAt: time.Now(),
		}
		if err := uow.SharedChatSessionRepository().Create(ctx, shared); err != nil {
			return apperrors.NewInternal(err)
		}
	}
	return nil
}

func (s *advisorService) UnshareSessions(ctx context.Context, userId uuid.UUID, req *dto.ShareSessionsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := uow.AdvisorRepository().FindOne(ctx,
		specification.ByID{ID: req.AdvisorId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if advisor == nil {
		return apperrors.NewNotFound("advisor not found")
	}

	if err := uow.SharedChatSessionRepository().DeletePairs(ctx, advisor.Id, req.SessionIds); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

func (s *advisorService) SharedSessionIds(ctx context.Context, userId uuid.UUID, advisorId uuid.UUID) ([]uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := uow.AdvisorRepository().FindOne(ctx,
		specification.ByID{ID: advisorId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if advisor == nil {
		return nil, apperrors.NewNotFound("advisor not found")
	}

	shared, err := uow.SharedChatSessionRepository().FindAll(ctx,
		specification.ByAdvisorID{AdvisorID: advisorId},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	ids := make([]uuid.UUID, 0, len(shared))
	for _, sc := range shared {
		ids = append(ids, sc.SessionId)
	}
	return ids, nil
}

// SharedProfileView assembles the read-only aggregate an advisor sees. It
// never includes the password hash, raw onboarding answers, or sessions
// outside the advisor's shared set.
func (s *advisorService) SharedProfileView(ctx context.Context, token uuid.UUID) (*dto.SharedProfileViewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := s.resolveByToken(ctx, uow, token)
	if err != nil {
		return nil, err
	}
	if advisor == nil {
		return nil, apperrors.NewNotFound("share link not found")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: advisor.UserId})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("share link not found")
	}

	colleges, err := uow.CollegeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: advisor.UserId},
		specification.OrderBy{Field: "status"},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	recommendations, err := uow.RecommendationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: advisor.UserId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	sharedJunctions, err := uow.SharedChatSessionRepository().FindAll(ctx,
		specification.ByAdvisorID{AdvisorID: advisor.Id},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	sharedSessions := make([]dto.SharedSessionDTO, 0, len(sharedJunctions))
	for _, junction := range sharedJunctions {
		chatSession, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: junction.SessionId},
		)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		if chatSession == nil || chatSession.UserId != advisor.UserId {
			continue
		}
		updatedAt := chatSession.UpdatedAt
		sharedSessions = append(sharedSessions, dto.SharedSessionDTO{
			Id:        chatSession.Id,
			Title:     chatSession.Title,
			CreatedAt: chatSession.CreatedAt,
			UpdatedAt: &updatedAt,
		})
	}

	collegeDTOs := toCollegeResponses(colleges)
	collegeValues := make([]dto.CollegeResponse, 0, len(collegeDTOs))
	for _, c := range collegeDTOs {
		collegeValues = append(collegeValues, *c)
	}

	recValues := make([]dto.RecommendationResponse, 0, len(recommendations))
	for _, r := range recommendations {
		recValues = append(recValues, *toRecommendationResponse(r))
	}

	return &dto.SharedProfileViewResponse{
		Advisor: dto.SharedAdvisorDTO{
			Id:   advisor.Id,
			Name: advisor.Name,
			Type: string(advisor.Type),
		},
		User: dto.SharedUserDTO{
			Username:           user.Username,
			ProfileDescription: user.ProfileDescription,
		},
		Colleges:           collegeValues,
		Recommendations:    recValues,
		SharedChatSessions: sharedSessions,
	}, nil
}

// SharedMessages returns an empty list rather than an error when the session
// is not in the advisor's shared set or belongs to another user.
func (s *advisorService) SharedMessages(ctx context.Context, token uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := s.resolveByToken(ctx, uow, token)
	if err != nil {
		return nil, err
	}
	if advisor == nil {
		return nil, apperrors.NewNotFound("share link not found")
	}

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if chatSession == nil || chatSession.UserId != advisor.UserId {
		return []*dto.ChatMessageResponse{}, nil
	}

	shared, err := uow.SharedChatSessionRepository().Exists(ctx, advisor.Id, sessionId)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if !shared {
		return []*dto.ChatMessageResponse{}, nil
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	out := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toChatMessageResponse(m))
	}
	return out, nil
}

// AddRecommendationAsAdvisor is the one write path available through a share
// link. The row lands on the advisor's owning user, labeled with the
// advisor's name.
func (s *advisorService) AddRecommendationAsAdvisor(ctx context.Context, token uuid.UUID, req *dto.AdvisorRecommendationRequest) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	advisor, err := s.resolveByToken(ctx, uow, token)
	if err != nil {
		return nil, err
	}
	if advisor == nil {
		return nil, apperrors.NewNotFound("share link not found")
	}

	recommendedBy := advisor.Name
	rec := &entity.CollegeRecommendation{
		Id:            uuid.New(),
		UserId:        advisor.UserId,
		Name:          req.CollegeName,
		Description:   "",
		Reason:        fmt.Sprintf("Suggested by %s", advisor.Name),
		RecommendedBy: &recommendedBy,
		AdvisorNotes:  req.AdvisorNotes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uow.RecommendationRepository().Create(ctx, rec); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "ADVISOR_RECOMMENDATION_ADDED",
			Data: map[string]interface{}{
				"user_id":      advisor.UserId.String(),
				"advisor_name": advisor.Name,
				"college_name": rec.Name,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AdvisorService", "Failed to publish ADVISOR_RECOMMENDATION_ADDED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return toRecommendationResponse(rec), nil
}
