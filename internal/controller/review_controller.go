package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/pkg/serverutils"
	"github.com/sajjad006/ardine-backend/internal/service"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListForRestaurant(ctx *fiber.Ctx) error
	ListForDish(ctx *fiber.Ctx) error
	RestaurantAggregate(ctx *fiber.Ctx) error
	DishAggregate(ctx *fiber.Ctx) error
}

type reviewController struct {
	reviewService service.IReviewService
}

func NewReviewController(reviewService service.IReviewService) IReviewController {
	return &reviewController{
		reviewService: reviewService,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Post("", c.Create)
	h.Get("restaurant/:restaurantId", c.ListForRestaurant)
	h.Get("restaurant/:restaurantId/aggregate", c.RestaurantAggregate)
	h.Get("dish/:dishId", c.ListForDish)
	h.Get("dish/:dishId/aggregate", c.DishAggregate)
}

func (c *reviewController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Create(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReviewScope) {
			return fiber.NewError(fiber.StatusBadRequest, "Review must target exactly one of restaurant or dish")
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create review", res))
}

func (c *reviewController) ListForRestaurant(ctx *fiber.Ctx) error {
	restaurantId, err := uuid.Parse(ctx.Params("restaurantId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid restaurant id")
	}

	res, err := c.reviewService.ListForRestaurant(ctx.Context(), restaurantId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *reviewController) ListForDish(ctx *fiber.Ctx) error {
	dishId, err := uuid.Parse(ctx.Params("dishId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
	}

	res, err := c.reviewService.ListForDish(ctx.Context(), dishId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *reviewController) RestaurantAggregate(ctx *fiber.Ctx) error {
	restaurantId, err := uuid.Parse(ctx.Params("restaurantId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid restaurant id")
	}

	res, err := c.reviewService.GetAggregate(ctx.Context(), &restaurantId, nil)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *reviewController) DishAggregate(ctx *fiber.Ctx) error {
	dishId, err := uuid.Parse(ctx.Params("dishId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
	}

	res, err := c.reviewService.GetAggregate(ctx.Context(), nil, &dishId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
