package implementation

import (
	"context"
	"errors"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/mapper"
	"github.com/sajjad006/ardine-backend/internal/model"
	"github.com/sajjad006/ardine-backend/internal/repository/contract"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DishRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DishMapper
}

func NewDishRepository(db *gorm.DB) contract.DishRepository {
	return &DishRepositoryImpl{
		db:     db,
		mapper: mapper.NewDishMapper(),
	}
}

func (r *DishRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DishRepositoryImpl) Create(ctx context.Context, dish *entity.Dish) error {
	m := r.mapper.ToModel(dish)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*dish = *r.mapper.ToEntity(m)
	return nil
}

func (r *DishRepositoryImpl) Update(ctx context.Context, dish *entity.Dish) error {
	m := r.mapper.ToModel(dish)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*dish = *r.mapper.ToEntity(m)
	return nil
}

func (r *DishRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Dish{}, id).Error
}

func (r *DishRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Dish, error) {
	var m model.Dish
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DishRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Dish, error) {
	var models []*model.Dish
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Dish, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *DishRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Dish{}).Count(&count).Error
	return count, err
}
