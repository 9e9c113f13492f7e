package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/pkg/serverutils"
	"github.com/sajjad006/ardine-backend/internal/service"
)

type IRestaurantController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type restaurantController struct {
	restaurantService service.IRestaurantService
}

func NewRestaurantController(restaurantService service.IRestaurantService) IRestaurantController {
	return &restaurantController{
		restaurantService: restaurantService,
	}
}

func (c *restaurantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/restaurant/v1")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *restaurantController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRestaurantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.restaurantService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create restaurant", res))
}

func (c *restaurantController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid restaurant id")
	}

	var req dto.UpdateRestaurantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.restaurantService.Update(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Restaurant not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update restaurant", res))
}

func (c *restaurantController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid restaurant id")
	}

	res, err := c.restaurantService.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Restaurant not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *restaurantController) List(ctx *fiber.Ctx) error {
	res, err := c.restaurantService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *restaurantController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid restaurant id")
	}

	if err := c.restaurantService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete restaurant", nil))
}
