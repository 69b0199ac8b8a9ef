package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/constant"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/repository/specification"
	"collegeplan-be/internal/repository/unitofwork"
	"collegeplan-be/pkg/llm"

	"github.com/google/uuid"
)

// generatedBatchSize is the suggestion count the recommendations prompt asks for.
const generatedBatchSize = 3

type IRecommendationService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.RecommendationResponse, error)
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRecommendationsRequest) ([]*dto.RecommendationResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error)
	ConvertToCollege(ctx context.Context, userId uuid.UUID, req *dto.ConvertRecommendationRequest) (*dto.CollegeResponse, error)
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	ai         llm.Provider
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory, ai llm.Provider) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
		ai:         ai,
	}
}

func toRecommendationResponse(r *entity.CollegeRecommendation) *dto.RecommendationResponse {
	return &dto.RecommendationResponse{
		Id:             r.Id,
		Name:           r.Name,
		Description:    r.Description,
		Reason:         r.Reason,
		AcceptanceRate: r.AcceptanceRate,
		RecommendedBy:  r.RecommendedBy,
		AdvisorNotes:   r.AdvisorNotes,
		CreatedAt:      r.CreatedAt,
	}
}

func (s *recommendationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recs, err := uow.RecommendationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	out := make([]*dto.RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, toRecommendationResponse(r))
	}
	return out, nil
}

// generatedRecommendation matches the JSON shape the prompt demands.
type generatedRecommendation struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Reason         string   `json:"reason"`
	AcceptanceRate *float64 `json:"acceptance_rate"`
}

// stripJSONFences removes a ```json ... ``` wrapper the model sometimes adds
// despite the instructions.
func stripJSONFences(text string) string {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

// parseGeneratedRecommendations decodes the model output and enforces the
// batch size the prompt asks for. Anything else means the model ignored
// the contract and the batch is not trustworthy.
func parseGeneratedRecommendations(text string) ([]generatedRecommendation, error) {
	var generated []generatedRecommendation
	if err := json.Unmarshal([]byte(stripJSONFences(text)), &generated); err != nil {
		return nil, apperrors.NewUpstream("AI returned malformed recommendations", err)
	}
	if len(generated) != generatedBatchSize {
		return nil, apperrors.NewUpstream(
			fmt.Sprintf("AI returned %d recommendations, expected %d", len(generated), generatedBatchSize), nil)
	}
	return generated, nil
}

func (s *recommendationService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRecommendationsRequest) ([]*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	profile := "No profile description yet."
	if user.ProfileDescription != nil && *user.ProfileDescription != "" {
		profile = *user.ProfileDescription
	}

	colleges, err := uow.CollegeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "status"},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	existingRecs, err := uow.RecommendationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	listLines := make([]string, 0, len(colleges))
	for _, c := range colleges {
		listLines = append(listLines, fmt.Sprintf("- %s (%s)", c.Name, c.Status))
	}
	if len(listLines) == 0 {
		listLines = append(listLines, "(none)")
	}
	recLines := make([]string, 0, len(existingRecs))
	for _, r := range existingRecs {
		recLines = append(recLines, "- "+r.Name)
	}
	if len(recLines) == 0 {
		recLines = append(recLines, "(none)")
	}

	preference := req.Preference
	if preference == "" {
		preference = "(none given)"
	}

	prompt := fmt.Sprintf(constant.RecommendationsPromptV1,
		profile,
		strings.Join(listLines, "\n"),
		strings.Join(recLines, "\n"),
		preference,
	)

	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, wrapAIError(err)
	}

	generated, err := parseGeneratedRecommendations(text)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.RecommendationResponse, 0, len(generated))
	for _, g := range generated {
		rec := &entity.CollegeRecommendation{
			Id:             uuid.New(),
			UserId:         userId,
			Name:           g.Name,
			Description:    g.Description,
			Reason:         g.Reason,
			AcceptanceRate: g.AcceptanceRate,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}
		if err := uow.RecommendationRepository().Create(ctx, rec); err != nil {
			return nil, apperrors.NewInternal(err)
		}
		out = append(out, toRecommendationResponse(rec))
	}
	return out, nil
}

func (s *recommendationService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rec, err := uow.RecommendationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return false, apperrors.NewInternal(err)
	}
	if rec == nil {
		return false, nil
	}

	deleted, err := uow.RecommendationRepository().Delete(ctx, id)
	if err != nil {
		return false, apperrors.NewInternal(err)
	}
	return deleted, nil
}

// ConvertToCollege creates the college and removes the recommendation in one
// transaction; a failure on either side leaves both untouched.
func (s *recommendationService) ConvertToCollege(ctx context.Context, userId uuid.UUID, req *dto.ConvertRecommendationRequest) (*dto.CollegeResponse, error) {
	status := entity.CollegeStatus(req.Status)
	if !entity.ValidCollegeStatus(status) {
		return nil, apperrors.NewValidation("unknown college status: " + req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	rec, err := uow.RecommendationRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("recommendation not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	defer uow.Rollback()

	maxPos, err := uow.CollegeRepository().MaxPosition(ctx, userId, status)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	college := &entity.College{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      rec.Name,
		Status:    status,
		Position:  maxPos + 1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.CollegeRepository().Create(ctx, college); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if _, err := uow.RecommendationRepository().Delete(ctx, rec.Id); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toCollegeResponse(college), nil
}
