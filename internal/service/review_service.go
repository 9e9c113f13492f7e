package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
)

type IReviewService interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListForRestaurant(ctx context.Context, restaurantId uuid.UUID) ([]*dto.ReviewResponse, error)
	ListForDish(ctx context.Context, dishId uuid.UUID) ([]*dto.ReviewResponse, error)
	GetAggregate(ctx context.Context, restaurantId, dishId *uuid.UUID) (*dto.RatingAggregateResponse, error)
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IReviewService {
	return &reviewService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *reviewService) Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	restaurantId, dishId, err := parseReviewScope(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	review := entity.Review{
		Id:           uuid.New(),
		RestaurantId: restaurantId,
		DishId:       dishId,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}

	if err := uow.ReviewRepository().Create(ctx, &review); err != nil {
		return nil, err
	}

	// Recompute the cached aggregate; review creation already succeeded,
	// so a failed recompute is logged, not returned.
	if err := s.recomputeAggregate(ctx, uow, restaurantId, dishId); err != nil {
		s.log.Warn("ReviewService", "Failed to refresh rating aggregate", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return reviewToResponse(&review), nil
}

func (s *reviewService) ListForRestaurant(ctx context.Context, restaurantId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.Filter("restaurant_id", restaurantId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return reviewsToResponses(reviews), nil
}

func (s *reviewService) ListForDish(ctx context.Context, dishId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.Filter("dish_id", dishId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return reviewsToResponses(reviews), nil
}

func (s *reviewService) GetAggregate(ctx context.Context, restaurantId, dishId *uuid.UUID) (*dto.RatingAggregateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	aggregate, err := uow.ReviewRepository().FindAggregate(ctx, restaurantId, dishId)
	if err != nil {
		return nil, err
	}
	if aggregate == nil {
		return &dto.RatingAggregateResponse{
			RestaurantId:  uuidString(restaurantId),
			DishId:        uuidString(dishId),
			AverageRating: 0,
			TotalReviews:  0,
		}, nil
	}

	return &dto.RatingAggregateResponse{
		RestaurantId:  uuidString(aggregate.RestaurantId),
		DishId:        uuidString(aggregate.DishId),
		AverageRating: aggregate.AverageRating,
		TotalReviews:  aggregate.TotalReviews,
	}, nil
}

func (s *reviewService) recomputeAggregate(ctx context.Context, uow unitofwork.UnitOfWork, restaurantId, dishId *uuid.UUID) error {
	avg, count, err := uow.ReviewRepository().AggregateFor(ctx, restaurantId, dishId)
	if err != nil {
		return err
	}

	return uow.ReviewRepository().UpsertAggregate(ctx, &entity.RatingAggregate{
		Id:            uuid.New(),
		RestaurantId:  restaurantId,
		DishId:        dishId,
		AverageRating: avg,
		TotalReviews:  count,
	})
}

func parseReviewScope(req *dto.CreateReviewRequest) (*uuid.UUID, *uuid.UUID, error) {
	if (req.RestaurantId == "") == (req.DishId == "") {
		return nil, nil, ErrInvalidReviewScope
	}

	if req.DishId != "" {
		id, err := uuid.Parse(req.DishId)
		if err != nil {
			return nil, nil, fmt.Errorf("parse dish id: %w", err)
		}
		return nil, &id, nil
	}

	id, err := uuid.Parse(req.RestaurantId)
	if err != nil {
		return nil, nil, fmt.Errorf("parse restaurant id: %w", err)
	}
	return &id, nil, nil
}

func reviewsToResponses(reviews []*entity.Review) []*dto.ReviewResponse {
	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, reviewToResponse(review))
	}
	return responses
}

func reviewToResponse(review *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:           review.Id.String(),
		RestaurantId: uuidString(review.RestaurantId),
		DishId:       uuidString(review.DishId),
		Rating:       review.Rating,
		Comment:      review.Comment,
		IsVerified:   review.IsVerified,
		CreatedAt:    review.CreatedAt,
	}
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
