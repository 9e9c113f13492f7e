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

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *ReviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	var models []*model.Review
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Review, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ReviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Review{}).Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) AggregateFor(ctx context.Context, restaurantId, dishId *uuid.UUID) (float64, int, error) {
	type aggRow struct {
		Avg   float64
		Count int
	}
	var row aggRow

	query := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(id) as count")
	query = r.scopeTarget(query, restaurantId, dishId)

	if err := query.Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}

func (r *ReviewRepositoryImpl) UpsertAggregate(ctx context.Context, aggregate *entity.RatingAggregate) error {
	existing, err := r.FindAggregate(ctx, aggregate.RestaurantId, aggregate.DishId)
	if err != nil {
		return err
	}
	m := r.mapper.AggregateToModel(aggregate)
	if existing != nil {
		m.Id = existing.Id
		return r.db.WithContext(ctx).Save(m).Error
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ReviewRepositoryImpl) FindAggregate(ctx context.Context, restaurantId, dishId *uuid.UUID) (*entity.RatingAggregate, error) {
	var m model.RatingAggregate
	query := r.scopeTarget(r.db.WithContext(ctx), restaurantId, dishId)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AggregateToEntity(&m), nil
}

func (r *ReviewRepositoryImpl) scopeTarget(db *gorm.DB, restaurantId, dishId *uuid.UUID) *gorm.DB {
	if dishId != nil {
		return db.Where("dish_id = ?", *dishId)
	}
	if restaurantId != nil {
		return db.Where("restaurant_id = ? AND dish_id IS NULL", *restaurantId)
	}
	return db
}
