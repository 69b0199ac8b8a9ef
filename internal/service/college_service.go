package service

import (
	"context"
	"time"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/repository/specification"
	"collegeplan-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICollegeService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.CollegeResponse, error)
	ListByStatus(ctx context.Context, userId uuid.UUID, status string) ([]*dto.CollegeResponse, error)
	Add(ctx context.Context, userId uuid.UUID, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error)
	UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateCollegeStatusRequest) (*dto.CollegeResponse, error)
	UpdatePosition(ctx context.Context, userId uuid.UUID, req *dto.UpdateCollegePositionRequest) (*dto.CollegeResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error)
}

type collegeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCollegeService(uowFactory unitofwork.RepositoryFactory) ICollegeService {
	return &collegeService{
		uowFactory: uowFactory,
	}
}

func toCollegeResponse(c *entity.College) *dto.CollegeResponse {
	updatedAt := c.UpdatedAt
	return &dto.CollegeResponse{
		Id:        c.Id,
		Name:      c.Name,
		Status:    string(c.Status),
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: &updatedAt,
	}
}

func toCollegeResponses(colleges []*entity.College) []*dto.CollegeResponse {
	out := make([]*dto.CollegeResponse, 0, len(colleges))
	for _, c := range colleges {
		out = append(out, toCollegeResponse(c))
	}
	return out
}

func (s *collegeService) List(ctx context.Context, userId uuid.UUID) ([]*dto.CollegeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	colleges, err := uow.CollegeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "status"},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toCollegeResponses(colleges), nil
}

func (s *collegeService) ListByStatus(ctx context.Context, userId uuid.UUID, status string) ([]*dto.CollegeResponse, error) {
	if !entity.ValidCollegeStatus(entity.CollegeStatus(status)) {
		return nil, apperrors.NewValidation("unknown college status: " + status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	colleges, err := uow.CollegeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatus{Status: status},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toCollegeResponses(colleges), nil
}

func (s *collegeService) Add(ctx context.Context, userId uuid.UUID, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error) {
	status := entity.CollegeStatus(req.Status)
	if req.Status == "" {
		status = entity.CollegeStatusResearching
	}
	if !entity.ValidCollegeStatus(status) {
		return nil, apperrors.NewValidation("unknown college status: " + req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		maxPos, err := uow.CollegeRepository().MaxPosition(ctx, userId, status)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		position = maxPos + 1
	}

	college := &entity.College{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Status:    status,
		Position:  position,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.CollegeRepository().Create(ctx, college); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toCollegeResponse(college), nil
}

// UpdateStatus moves a college to another column, appending it to the end.
// Siblings in either column keep their positions.
func (s *collegeService) UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateCollegeStatusRequest) (*dto.CollegeResponse, error) {
	newStatus := entity.CollegeStatus(req.Status)
	if !entity.ValidCollegeStatus(newStatus) {
		return nil, apperrors.NewValidation("unknown college status: " + req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	college, err := uow.CollegeRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if college == nil {
		return nil, apperrors.NewNotFound("college not found")
	}

	if college.Status != newStatus {
		maxPos, err := uow.CollegeRepository().MaxPosition(ctx, userId, newStatus)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		college.Status = newStatus
		college.Position = maxPos + 1
	}
	college.UpdatedAt = time.Now()

	if err := uow.CollegeRepository().Update(ctx, college); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toCollegeResponse(college), nil
}

func (s *collegeService) UpdatePosition(ctx context.Context, userId uuid.UUID, req *dto.UpdateCollegePositionRequest) (*dto.CollegeResponse, error) {
	if req.Position == nil || *req.Position < 0 {
		return nil, apperrors.NewValidation("position must be a non-negative integer")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	college, err := uow.CollegeRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if college == nil {
		return nil, apperrors.NewNotFound("college not found")
	}

	college.Position = *req.Position
	college.UpdatedAt = time.Now()

	if err := uow.CollegeRepository().Update(ctx, college); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toCollegeResponse(college), nil
}

// Delete is idempotent: deleting a missing or foreign id returns false, not
// an error.
func (s *collegeService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	college, err := uow.CollegeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return false, apperrors.NewInternal(err)
	}
	if college == nil {
		return false, nil
	}

	deleted, err := uow.CollegeRepository().Delete(ctx, id)
	if err != nil {
		return false, apperrors.NewInternal(err)
	}
	return deleted, nil
}
