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

type RecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecommendationMapper
}

func NewRecommendationRepository(db *gorm.DB) contract.RecommendationRepository {
	return &RecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecommendationMapper(),
	}
}

func (r *RecommendationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecommendationRepositoryImpl) Create(ctx context.Context, rec *entity.CollegeRecommendation) error {
	m := r.mapper.ToModel(rec)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rec = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecommendationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.CollegeRecommendation{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RecommendationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollegeRecommendation, error) {
	var m model.CollegeRecommendation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecommendationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollegeRecommendation, error) {
	var models []*model.CollegeRecommendation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
