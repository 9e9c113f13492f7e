package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/pkg/serverutils"
	"github.com/sajjad006/ardine-backend/internal/service"
)

type IDishController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ListByRestaurant(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type dishController struct {
	menuService service.IMenuService
}

func NewDishController(menuService service.IMenuService) IDishController {
	return &dishController{
		menuService: menuService,
	}
}

func (c *dishController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dish/v1")
	h.Post("", c.Create)
	h.Get("restaurant/:restaurantId", c.ListByRestaurant)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *dishController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDishRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.menuService.CreateDish(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Restaurant not found")
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create dish", res))
}

func (c *dishController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
	}

	var req dto.UpdateDishRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.menuService.UpdateDish(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Dish not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update dish", res))
}

func (c *dishController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
	}

	res, err := c.menuService.GetDish(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Dish not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *dishController) ListByRestaurant(ctx *fiber.Ctx) error {
	restaurantId, err := uuid.Parse(ctx.Params("restaurantId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid restaurant id")
	}

	res, err := c.menuService.ListDishes(ctx.Context(), restaurantId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *dishController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
	}

	if err := c.menuService.DeleteDish(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete dish", nil))
}
