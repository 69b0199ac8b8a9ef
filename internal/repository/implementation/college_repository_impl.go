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

type CollegeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollegeMapper
}

func NewCollegeRepository(db *gorm.DB) contract.CollegeRepository {
	return &CollegeRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollegeMapper(),
	}
}

func (r *CollegeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CollegeRepositoryImpl) Create(ctx context.Context, college *entity.College) error {
	m := r.mapper.ToModel(college)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*college = *r.mapper.ToEntity(m)
	return nil
}

func (r *CollegeRepositoryImpl) Update(ctx context.Context, college *entity.College) error {
	m := r.mapper.ToModel(college)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*college = *r.mapper.ToEntity(m)
	return nil
}

func (r *CollegeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.College{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CollegeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.College, error) {
	var m model.College
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CollegeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.College, error) {
	var models []*model.College
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CollegeRepositoryImpl) MaxPosition(ctx context.Context, userId uuid.UUID, status entity.CollegeStatus) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.College{}).
		Where("user_id = ? AND status = ?", userId, string(status)).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
