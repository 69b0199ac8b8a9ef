package mapper

import (
	"encoding/json"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ChatMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	var attachments []entity.Attachment
	if len(msg.Attachments) > 0 {
		// A corrupt column should not make the whole message unreadable.
		_ = json.Unmarshal(msg.Attachments, &attachments)
	}
	return &entity.ChatMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Content:     msg.Content,
		Sender:      msg.Sender,
		Attachments: attachments,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	var attachments datatypes.JSON
	if len(msg.Attachments) > 0 {
		raw, err := json.Marshal(msg.Attachments)
		if err == nil {
			attachments = datatypes.JSON(raw)
		}
	}
	return &model.ChatMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Content:     msg.Content,
		Sender:      msg.Sender,
		Attachments: attachments,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
