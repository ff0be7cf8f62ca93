package controller

import (
	"strconv"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/pkg/serverutils"
	"pocket-pm-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPrdController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type prdController struct {
	prdService service.IPrdService
}

func NewPrdController(prdService service.IPrdService) IPrdController {
	return &prdController{
		prdService: prdService,
	}
}

func (c *prdController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prd")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/generate", c.Generate)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *prdController) Generate(ctx *fiber.Ctx) error {
	var req dto.GeneratePrdRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.prdService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate prd", res))
}

func (c *prdController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreatePrdRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.prdService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create prd", res))
}

func (c *prdController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.prdService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list prds", res))
}

func (c *prdController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return apperrors.NewValidation("id must be an integer")
	}

	res, err := c.prdService.Get(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show prd", res))
}
