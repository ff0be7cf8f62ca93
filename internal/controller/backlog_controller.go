package controller

import (
	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/pkg/serverutils"
	"pocket-pm-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBacklogController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type backlogController struct {
	backlogService service.IBacklogService
}

func NewBacklogController(backlogService service.IBacklogService) IBacklogController {
	return &backlogController{
		backlogService: backlogService,
	}
}

func (c *backlogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/backlog")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/generate", c.Generate)
}

func (c *backlogController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateBacklogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.backlogService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
