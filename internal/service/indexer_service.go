package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
	"github.com/sajjad006/ardine-backend/pkg/embedding"
)

type IIndexerService interface {
	// Rebuild drops the whole embedding collection and reindexes every
	// active dish. Queries during the rebuild window may see a partial
	// collection; the window is logged rather than masked.
	Rebuild(ctx context.Context) (int, error)

	// IndexDish refreshes the index entries for a single dish.
	IndexDish(ctx context.Context, dishId uuid.UUID) error

	// RemoveDish drops a dish's index entries.
	RemoveDish(ctx context.Context, dishId uuid.UUID) error
}

type indexerService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewIndexerService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (s *indexerService) Rebuild(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dishes, err := uow.DishRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return 0, fmt.Errorf("list dishes: %w", err)
	}

	embeddings := make([]*entity.DishEmbedding, 0, len(dishes))
	for _, dish := range dishes {
		emb, err := s.embedDish(dish)
		if err != nil {
			return 0, fmt.Errorf("embed dish %s: %w", dish.Id, err)
		}
		embeddings = append(embeddings, emb)
	}

	started := time.Now()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	if err := uow.DishEmbeddingRepository().DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear collection: %w", err)
	}

	if len(embeddings) > 0 {
		if err := uow.DishEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
			return 0, fmt.Errorf("insert embeddings: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}

	s.log.Info("IndexerService", "Full index rebuild completed", map[string]interface{}{
		"dishes":         len(embeddings),
		"rebuild_window": time.Since(started).String(),
	})

	return len(embeddings), nil
}

func (s *indexerService) IndexDish(ctx context.Context, dishId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dish, err := uow.DishRepository().FindOne(ctx, specification.ByID{ID: dishId})
	if err != nil {
		return fmt.Errorf("find dish: %w", err)
	}
	if dish == nil {
		// Deleted between publish and consume; drop any stale entries.
		return s.RemoveDish(ctx, dishId)
	}

	if !dish.IsActive {
		return s.RemoveDish(ctx, dishId)
	}

	emb, err := s.embedDish(dish)
	if err != nil {
		return fmt.Errorf("embed dish %s: %w", dish.Id, err)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DishEmbeddingRepository().DeleteByDishId(ctx, dishId); err != nil {
		return fmt.Errorf("delete stale embeddings: %w", err)
	}
	if err := uow.DishEmbeddingRepository().Create(ctx, emb); err != nil {
		return fmt.Errorf("insert embedding: %w", err)
	}

	return uow.Commit()
}

func (s *indexerService) RemoveDish(ctx context.Context, dishId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DishEmbeddingRepository().DeleteByDishId(ctx, dishId)
}

func (s *indexerService) embedDish(dish *entity.Dish) (*entity.DishEmbedding, error) {
	document := buildDishDocument(dish)

	res, err := s.embeddingProvider.Generate(document, embedding.TaskTypeDocument)
	if err != nil {
		return nil, err
	}

	return &entity.DishEmbedding{
		Id:           uuid.New(),
		DishId:       dish.Id,
		RestaurantId: dish.RestaurantId,
		Document:     document,
		Embedding:    res.Embedding.Values,
		Metadata:     dishMetadata(dish),
		CreatedAt:    time.Now(),
	}, nil
}

func buildDishDocument(dish *entity.Dish) string {
	return fmt.Sprintf(
		"Name: %s\nDescription: %s\nCalories: %d\nPrice: %.2f\nCategory: %s\nTags: %s\nIngredients: %s",
		dish.Name,
		dish.Description,
		dish.Calories,
		dish.Price,
		dish.Category,
		strings.Join(dish.Tags, ", "),
		strings.Join(dish.Ingredients, ", "),
	)
}

func dishMetadata(dish *entity.Dish) map[string]interface{} {
	return map[string]interface{}{
		"item_id":      dish.Id.String(),
		"name":         dish.Name,
		"price":        dish.Price,
		"calories":     dish.Calories,
		"category":     dish.Category,
		"tags":         strings.Join(dish.Tags, ", "),
		"ingredients":  strings.Join(dish.Ingredients, ", "),
		"chef_special": dish.ChefSpecial,
		"image_url":    dish.ImageURL,
		"video_url":    dish.VideoURL,
		"model_3d_url": dish.Model3DURL,
	}
}
