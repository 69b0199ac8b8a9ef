package contract

import (
	"context"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	UpdateProfileDescription(ctx context.Context, userId uuid.UUID, description string) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
