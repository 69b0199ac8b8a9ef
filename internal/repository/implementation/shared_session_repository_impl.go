package implementation

import (
	"context"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/mapper"
	"collegeplan-be/internal/model"
	"collegeplan-be/internal/repository/contract"
	"collegeplan-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SharedChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdvisorMapper
}

func NewSharedChatSessionRepository(db *gorm.DB) contract.SharedChatSessionRepository {
	return &SharedChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdvisorMapper(),
	}
}

func (r *SharedChatSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SharedChatSessionRepositoryImpl) Create(ctx context.Context, shared *entity.SharedChatSession) error {
	m := r.mapper.SharedToModel(shared)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*shared = *r.mapper.SharedToEntity(m)
	return nil
}

func (r *SharedChatSessionRepositoryImpl) Exists(ctx context.Context, advisorId, sessionId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SharedChatSession{}).
		Where("advisor_id = ? AND session_id = ?", advisorId, sessionId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SharedChatSessionRepositoryImpl) DeletePairs(ctx context.Context, advisorId uuid.UUID, sessionIds []uuid.UUID) error {
	if len(sessionIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("advisor_id = ? AND session_id IN ?", advisorId, sessionIds).
		Delete(&model.SharedChatSession{}).Error
}

func (r *SharedChatSessionRepositoryImpl) DeleteByAdvisorId(ctx context.Context, advisorId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("advisor_id = ?", advisorId).
		Delete(&model.SharedChatSession{}).Error
}

func (r *SharedChatSessionRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Delete(&model.SharedChatSession{}).Error
}

func (r *SharedChatSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SharedChatSession, error) {
	var models []*model.SharedChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SharedChatSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SharedToEntity(m)
	}
	return entities, nil
}
