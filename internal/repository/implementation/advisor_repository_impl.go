package implementation

import (
	"context"
	"errors"

	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/mapper"
	"collegeplan-be/internal/model"
	"collegeplan-be/internal/repository/contract"
	"collegeplan-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdvisorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdvisorMapper
}

func NewAdvisorRepository(db *gorm.DB) contract.AdvisorRepository {
	return &AdvisorRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdvisorMapper(),
	}
}

func (r *AdvisorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdvisorRepositoryImpl) Create(ctx context.Context, advisor *entity.Advisor) error {
	m := r.mapper.ToModel(advisor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*advisor = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdvisorRepositoryImpl) Update(ctx context.Context, advisor *entity.Advisor) error {
	m := r.mapper.ToModel(advisor)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*advisor = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdvisorRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.Advisor{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AdvisorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Advisor, error) {
	var m model.Advisor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdvisorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Advisor, error) {
	var models []*model.Advisor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Advisor, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
