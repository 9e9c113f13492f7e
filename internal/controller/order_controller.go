package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/pkg/serverutils"
	"github.com/sajjad006/ardine-backend/internal/service"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ListByRestaurant(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) IOrderController {
	return &orderController{
		orderService: orderService,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/order/v1")
	h.Post("", c.Create)
	h.Get("restaurant/:restaurantId", c.ListByRestaurant)
	h.Get(":id", c.Show)
	h.Put(":id/status", c.UpdateStatus)
}

func (c *orderController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.PlaceOrder(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Restaurant not found")
		}
		if errors.Is(err, service.ErrDishNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Dish not found")
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success place order", res))
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	res, err := c.orderService.GetOrder(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *orderController) ListByRestaurant(ctx *fiber.Ctx) error {
	restaurantId, err := uuid.Parse(ctx.Params("restaurantId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid restaurant id")
	}

	res, err := c.orderService.ListOrders(ctx.Context(), restaurantId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *orderController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	var req dto.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.UpdateStatus(ctx.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid order status")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update order status", res))
}
