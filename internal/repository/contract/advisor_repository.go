package contract

import (
	"context"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdvisorRepository interface {
	Create(ctx context.Context, advisor *entity.Advisor) error
	Update(ctx context.Context, advisor *entity.Advisor) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Advisor, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Advisor, error)
}

type SharedChatSessionRepository interface {
	Create(ctx context.Context, shared *entity.SharedChatSession) error
	Exists(ctx context.Context, advisorId, sessionId uuid.UUID) (bool, error)
	DeletePairs(ctx context.Context, advisorId uuid.UUID, sessionIds []uuid.UUID) error
	DeleteByAdvisorId(ctx context.Context, advisorId uuid.UUID) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SharedChatSession, error)
}
