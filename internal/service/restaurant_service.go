package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
)

type IRestaurantService interface {
	Create(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RestaurantResponse, error)
	List(ctx context.Context) ([]*dto.RestaurantResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type restaurantService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRestaurantService(uowFactory unitofwork.RepositoryFactory) IRestaurantService {
	return &restaurantService{uowFactory: uowFactory}
}

func (s *restaurantService) Create(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant := entity.Restaurant{
		Id:        uuid.New(),
		Name:      req.Name,
		Tagline:   req.Tagline,
		LogoURL:   req.LogoURL,
		BannerURL: req.BannerURL,
		CreatedAt: time.Now(),
	}

	if err := uow.RestaurantRepository().Create(ctx, &restaurant); err != nil {
		return nil, err
	}

	return restaurantToResponse(&restaurant), nil
}

func (s *restaurantService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	now := time.Now()
	if req.Name != "" {
		restaurant.Name = req.Name
	}
	if req.Tagline != "" {
		restaurant.Tagline = req.Tagline
	}
	if req.LogoURL != "" {
		restaurant.LogoURL = req.LogoURL
	}
	if req.BannerURL != "" {
		restaurant.BannerURL = req.BannerURL
	}
	restaurant.UpdatedAt = &now

	if err := uow.RestaurantRepository().Update(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurantToResponse(restaurant), nil
}

func (s *restaurantService) Get(ctx context.Context, id uuid.UUID) (*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	return restaurantToResponse(restaurant), nil
}

func (s *restaurantService) List(ctx context.Context) ([]*dto.RestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurants, err := uow.RestaurantRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		responses = append(responses, restaurantToResponse(restaurant))
	}
	return responses, nil
}

func (s *restaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.RestaurantRepository().Delete(ctx, id)
}

func restaurantToResponse(restaurant *entity.Restaurant) *dto.RestaurantResponse {
	return &dto.RestaurantResponse{
		Id:        restaurant.Id.String(),
		Name:      restaurant.Name,
		Tagline:   restaurant.Tagline,
		LogoURL:   restaurant.LogoURL,
		BannerURL: restaurant.BannerURL,
		CreatedAt: restaurant.CreatedAt,
	}
}
