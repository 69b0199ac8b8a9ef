package contract

import (
	"context"

	"collegeplan-be/internal/entity"
)

// MessageFeedbackRepository is append-only; feedback rows are never
// updated or deleted.
type MessageFeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.MessageFeedback) error
}
