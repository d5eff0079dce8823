package controller

import (
	"nailaide-be/internal/dto"
	"nailaide-be/internal/pkg/serverutils"
	"nailaide-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
}

type chatController struct {
	agentService service.IAgentService
}

func NewChatController(agentService service.IAgentService) IChatController {
	return &chatController{
		agentService: agentService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("message", c.SendMessage)
	h.Get("context-stats", c.ContextStats)
	h.Get("context/:userId", c.GetContext)
	h.Delete("context/:userId", c.ClearContext)
	h.Get("services", c.ListServices)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.ProcessMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process message", res))
}

func (c *chatController) GetContext(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")

	res := c.agentService.GetContext(userId)
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "no active context for user")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show context", res))
}

func (c *chatController) ClearContext(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")

	cleared := c.agentService.ClearContext(userId)
	if !cleared {
		return fiber.NewError(fiber.StatusNotFound, "no active context for user")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear context", fiber.Map{
		"user_id": userId,
	}))
}

func (c *chatController) ContextStats(ctx *fiber.Ctx) error {
	res := c.agentService.ContextStats()
	return ctx.JSON(serverutils.SuccessResponse("Success show context stats", res))
}

func (c *chatController) ListServices(ctx *fiber.Ctx) error {
	res := c.agentService.ListServices()
	return ctx.JSON(serverutils.SuccessResponse("Success list services", res))
}
