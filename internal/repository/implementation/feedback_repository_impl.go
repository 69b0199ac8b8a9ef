package implementation

import (
	"context"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/mapper"
	"collegeplan-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MessageFeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewMessageFeedbackRepository(db *gorm.DB) contract.MessageFeedbackRepository {
	return &MessageFeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *MessageFeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.MessageFeedback) error {
	m := r.mapper.ToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.ToEntity(m)
	return nil
}
