package mapper

import (
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.MessageFeedback) *entity.MessageFeedback {
	if f == nil {
		return nil
	}
	return &entity.MessageFeedback{
		Id:             f.Id,
		UserId:         f.UserId,
		MessageId:      f.MessageId,
		MessageContent: f.MessageContent,
		IsPositive:     f.IsPositive,
		CreatedAt:      f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.MessageFeedback) *model.MessageFeedback {
	if f == nil {
		return nil
	}
	return &model.MessageFeedback{
		Id:             f.Id,
		UserId:         f.UserId,
		MessageId:      f.MessageId,
		MessageContent: f.MessageContent,
		IsPositive:     f.IsPositive,
		CreatedAt:      f.CreatedAt,
	}
}
