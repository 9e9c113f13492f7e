package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/pkg/serverutils"
	"github.com/sajjad006/ardine-backend/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	// Public endpoint; customers chat before they have any account.
	r.Post("/chat", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Restaurant not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
