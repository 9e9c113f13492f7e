package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
)

type IMenuService interface {
	CreateDish(ctx context.Context, req *dto.CreateDishRequest) (*dto.DishResponse, error)
	UpdateDish(ctx context.Context, id uuid.UUID, req *dto.UpdateDishRequest) (*dto.DishResponse, error)
	DeleteDish(ctx context.Context, id uuid.UUID) error
	GetDish(ctx context.Context, id uuid.UUID) (*dto.DishResponse, error)
	ListDishes(ctx context.Context, restaurantId uuid.UUID) ([]*dto.DishResponse, error)

	// GetDishByName resolves a dish by exact name within a restaurant,
	// case-insensitively. Returns (nil, nil) when no dish matches.
	GetDishByName(ctx context.Context, restaurantId uuid.UUID, name string) (*entity.Dish, error)
}

type menuService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	dishCache        *gocache.Cache
	log              logger.ILogger
}

func NewMenuService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IMenuService {
	return &menuService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		dishCache:        gocache.New(5*time.Minute, 10*time.Minute),
		log:              log,
	}
}

func (s *menuService) CreateDish(ctx context.Context, req *dto.CreateDishRequest) (*dto.DishResponse, error) {
	restaurantId, err := uuid.Parse(req.RestaurantId)
	if err != nil {
		return nil, fmt.Errorf("parse restaurant id: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: restaurantId})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	dish := entity.Dish{
		Id:              uuid.New(),
		RestaurantId:    restaurantId,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Calories:        req.Calories,
		Category:        req.Category,
		Tags:            req.Tags,
		Ingredients:     req.Ingredients,
		ChefSpecial:     req.ChefSpecial,
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
		Model3DURL:      req.Model3DURL,
		IsActive:        true,
		GstRate:         req.GstRate,
		DiscountPercent: req.DiscountPercent,
		CreatedAt:       time.Now(),
	}

	if err := uow.DishRepository().Create(ctx, &dish); err != nil {
		return nil, err
	}

	s.requestReindex(ctx, dish.Id, false)

	return dishToResponse(&dish), nil
}

func (s *menuService) UpdateDish(ctx context.Context, id uuid.UUID, req *dto.UpdateDishRequest) (*dto.DishResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dish, err := uow.DishRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, ErrDishNotFound
	}

	now := time.Now()
	prevName := dish.Name
	if req.Name != "" {
		dish.Name = req.Name
	}
	if req.Description != "" {
		dish.Description = req.Description
	}
	if req.Price > 0 {
		dish.Price = req.Price
	}
	if req.Calories > 0 {
		dish.Calories = req.Calories
	}
	if req.Category != "" {
		dish.Category = req.Category
	}
	if req.Tags != nil {
		dish.Tags = req.Tags
	}
	if req.Ingredients != nil {
		dish.Ingredients = req.Ingredients
	}
	if req.ChefSpecial != nil {
		dish.ChefSpecial = *req.ChefSpecial
	}
	if req.ImageURL != "" {
		dish.ImageURL = req.ImageURL
	}
	if req.VideoURL != "" {
		dish.VideoURL = req.VideoURL
	}
	if req.Model3DURL != "" {
		dish.Model3DURL = req.Model3DURL
	}
	if req.IsActive != nil {
		dish.IsActive = *req.IsActive
	}
	if req.GstRate > 0 {
		dish.GstRate = req.GstRate
	}
	if req.DiscountPercent > 0 {
		dish.DiscountPercent = req.DiscountPercent
	}
	dish.UpdatedAt = &now

	if err := uow.DishRepository().Update(ctx, dish); err != nil {
		return nil, err
	}

	// A rename leaves the cache keyed under the old name, so drop both.
	s.invalidateDishCache(dish.RestaurantId, prevName)
	s.invalidateDishCache(dish.RestaurantId, dish.Name)
	s.requestReindex(ctx, dish.Id, false)

	return dishToResponse(dish), nil
}

func (s *menuService) DeleteDish(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dish, err := uow.DishRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if dish == nil {
		return nil
	}

	if err := uow.DishRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateDishCache(dish.RestaurantId, dish.Name)
	s.requestReindex(ctx, id, true)

	return nil
}

func (s *menuService) GetDish(ctx context.Context, id uuid.UUID) (*dto.DishResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dish, err := uow.DishRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, ErrDishNotFound
	}

	return dishToResponse(dish), nil
}

func (s *menuService) ListDishes(ctx context.Context, restaurantId uuid.UUID) ([]*dto.DishResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dishes, err := uow.DishRepository().FindAll(ctx,
		specification.ByRestaurantId{RestaurantId: restaurantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		responses = append(responses, dishToResponse(dish))
	}
	return responses, nil
}

func (s *menuService) GetDishByName(ctx context.Context, restaurantId uuid.UUID, name string) (*entity.Dish, error) {
	cacheKey := dishCacheKey(restaurantId, name)
	if cached, found := s.dishCache.Get(cacheKey); found {
		if dish, ok := cached.(*entity.Dish); ok {
			return dish, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	dish, err := uow.DishRepository().FindOne(ctx,
		specification.ByRestaurantId{RestaurantId: restaurantId},
		specification.ByNameInsensitive{Name: name},
	)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, nil
	}

	s.dishCache.Set(cacheKey, dish, gocache.DefaultExpiration)
	return dish, nil
}

// requestReindex publishes the indexing message asynchronously; the menu
// mutation itself never fails because indexing is backlogged.
func (s *menuService) requestReindex(ctx context.Context, dishId uuid.UUID, deleted bool) {
	payload, err := json.Marshal(dto.IndexDishMessage{
		DishId:  dishId.String(),
		Deleted: deleted,
	})
	if err != nil {
		s.log.Error("MenuService", "Failed to marshal index message", map[string]interface{}{
			"dish_id": dishId.String(),
			"error":   err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Error("MenuService", "Failed to publish index message", map[string]interface{}{
			"dish_id": dishId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *menuService) invalidateDishCache(restaurantId uuid.UUID, name string) {
	s.dishCache.Delete(dishCacheKey(restaurantId, name))
}

func dishCacheKey(restaurantId uuid.UUID, name string) string {
	return restaurantId.String() + ":" + strings.ToLower(name)
}

func dishToResponse(dish *entity.Dish) *dto.DishResponse {
	return &dto.DishResponse{
		Id:              dish.Id.String(),
		RestaurantId:    dish.RestaurantId.String(),
		Name:            dish.Name,
		Description:     dish.Description,
		Price:           dish.Price,
		Calories:        dish.Calories,
		Category:        dish.Category,
		Tags:            dish.Tags,
		Ingredients:     dish.Ingredients,
		ChefSpecial:     dish.ChefSpecial,
		ImageURL:        dish.ImageURL,
		VideoURL:        dish.VideoURL,
		Model3DURL:      dish.Model3DURL,
		IsActive:        dish.IsActive,
		GstRate:         dish.GstRate,
		DiscountPercent: dish.DiscountPercent,
		CreatedAt:       dish.CreatedAt,
	}
}
