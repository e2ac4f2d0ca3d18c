package controller

import (
	"errors"

	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Transcript(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	QuickActions(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
	auth           fiber.Handler
}

func NewChatbotController(chatbotService service.IChatbotService, auth fiber.Handler) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
		auth:           auth,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(c.auth)
	h.Get("", c.Transcript)
	h.Post("", c.Send)
	h.Get("quick-actions", c.QuickActions)
}

func (c *chatbotController) Transcript(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.Transcript(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}

func (c *chatbotController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.chatbotService.Send(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatbotController) QuickActions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get quick actions", c.chatbotService.QuickActions(ctx.UserContext())))
}
