package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/constant"
	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
	"github.com/sajjad006/ardine-backend/pkg/events"
	pktNats "github.com/sajjad006/ardine-backend/pkg/nats"
)

type IOrderService interface {
	PlaceOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context, restaurantId uuid.UUID) ([]*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.OrderResponse, error)

	// CreateOrder persists a prebuilt order snapshot. Used by the chat
	// turn loop at confirm time; the order's id and timestamps are
	// filled in here.
	CreateOrder(ctx context.Context, order *entity.Order) error
}

type orderService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IOrderService {
	return &orderService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
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

	var total float64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		dishId, err := uuid.Parse(reqItem.DishId)
		if err != nil {
			return nil, fmt.Errorf("parse dish id: %w", err)
		}

		dish, err := uow.DishRepository().FindOne(ctx,
			specification.ByID{ID: dishId},
			specification.ByRestaurantId{RestaurantId: restaurantId},
		)
		if err != nil {
			return nil, err
		}
		if dish == nil {
			return nil, ErrDishNotFound
		}

		total += dish.Price * float64(reqItem.Quantity)
		items = append(items, entity.OrderItem{
			DishId:   dish.Id,
			Name:     dish.Name,
			Price:    dish.Price,
			Quantity: reqItem.Quantity,
		})
	}

	order := &entity.Order{
		RestaurantId: restaurantId,
		Items:        items,
		Total:        total,
		Status:       constant.OrderStatusPending,
		CustomerName: req.CustomerName,
		TableLabel:   req.TableLabel,
	}

	if err := s.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	return orderToResponse(order), nil
}

func (s *orderService) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.Id == uuid.Nil {
		order.Id = uuid.New()
	}
	if order.Status == "" {
		order.Status = constant.OrderStatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return err
	}

	s.publishOrderCreated(ctx, order)
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return orderToResponse(order), nil
}

func (s *orderService) ListOrders(ctx context.Context, restaurantId uuid.UUID) ([]*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.ByRestaurantId{RestaurantId: restaurantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, orderToResponse(order))
	}
	return responses, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.OrderResponse, error) {
	if !constant.OrderStatuses[status] {
		return nil, ErrInvalidStatus
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	oldStatus := order.Status
	if err := uow.OrderRepository().UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status

	if s.eventPublisher != nil {
		evt := events.OrderStatusChangedEvent{
			OrderId:      order.Id,
			RestaurantId: order.RestaurantId,
			OldStatus:    oldStatus,
			NewStatus:    status,
			ChangedAt:    time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("OrderService", "Failed to publish order status event", map[string]interface{}{
				"order_id": order.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	return orderToResponse(order), nil
}

// publishOrderCreated notifies the kitchen side; order persistence never
// fails because the broker is down.
func (s *orderService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	if s.eventPublisher == nil {
		return
	}

	evt := events.OrderCreatedEvent{
		OrderId:      order.Id,
		RestaurantId: order.RestaurantId,
		Total:        order.Total,
		ItemCount:    len(order.Items),
		CreatedAt:    order.CreatedAt,
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("OrderService", "Failed to publish order created event", map[string]interface{}{
			"order_id": order.Id.String(),
			"error":    err.Error(),
		})
	}
}

func orderToResponse(order *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			DishId:   item.DishId.String(),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return &dto.OrderResponse{
		Id:           order.Id.String(),
		RestaurantId: order.RestaurantId.String(),
		Items:        items,
		Total:        order.Total,
		Status:       order.Status,
		CustomerName: order.CustomerName,
		TableLabel:   order.TableLabel,
		CreatedAt:    order.CreatedAt,
	}
}
