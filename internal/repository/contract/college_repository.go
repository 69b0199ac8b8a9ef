package contract

import (
	"context"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CollegeRepository interface {
	Create(ctx context.Context, college *entity.College) error
	Update(ctx context.Context, college *entity.College) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.College, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.College, error)
	// MaxPosition returns the highest position in a (user, status) column,
	// or 0 when the column is empty.
	MaxPosition(ctx context.Context, userId uuid.UUID, status entity.CollegeStatus) (int, error)
}
