package contract

import (
	"context"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RecommendationRepository interface {
	Create(ctx context.Context, rec *entity.CollegeRecommendation) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollegeRecommendation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollegeRecommendation, error)
}
