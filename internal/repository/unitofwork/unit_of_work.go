package unitofwork

import (
	"context"

	"collegeplan-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CollegeRepository() contract.CollegeRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository

	AdvisorRepository() contract.AdvisorRepository
	SharedChatSessionRepository() contract.SharedChatSessionRepository
	RecommendationRepository() contract.RecommendationRepository
	MessageFeedbackRepository() contract.MessageFeedbackRepository
}
