package implementation

import (
	"context"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/mapper"
	"github.com/sajjad006/ardine-backend/internal/model"
	"github.com/sajjad006/ardine-backend/internal/repository/contract"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DishEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DishEmbeddingMapper
}

func NewDishEmbeddingRepository(db *gorm.DB) contract.DishEmbeddingRepository {
	return &DishEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewDishEmbeddingMapper(),
	}
}

func (r *DishEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DishEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.DishEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *DishEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.DishEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.DishEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *DishEmbeddingRepositoryImpl) DeleteByDishId(ctx context.Context, dishId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("dish_id = ?", dishId).Delete(&model.DishEmbedding{}).Error
}

// DeleteAll clears the whole collection. Used by the rebuild job only;
// queries running inside the rebuild window may see a partial collection.
func (r *DishEmbeddingRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.DishEmbedding{}).Error
}

func (r *DishEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DishEmbedding, error) {
	var models []*model.DishEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.DishEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *DishEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.DishEmbedding{}).Count(&count).Error
	return count, err
}

func (r *DishEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, restaurantId uuid.UUID) ([]*entity.DishEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.DishEmbedding

	// pgvector cosine distance: embedding_value <=> vector. The restaurant
	// filter is applied in SQL so another restaurant's dish can never rank.
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantId).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	entities := make([]*entity.DishEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
