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

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	UpdateOrder(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
}

type featureController struct {
	featureService service.IFeatureService
}

func NewFeatureController(featureService service.IFeatureService) IFeatureController {
	return &featureController{
		featureService: featureService,
	}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/features")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("/import", c.Import)
	h.Patch(":id/order", c.UpdateOrder)
	h.Delete(":id", c.Delete)
}

func (c *featureController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.featureService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list features", res))
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create feature", res))
}

func (c *featureController) UpdateOrder(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return apperrors.NewValidation("id must be an integer")
	}

	var req dto.UpdateFeatureOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.UpdateOrder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update feature order", res))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return apperrors.NewValidation("id must be an integer")
	}

	if err := c.featureService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete feature", nil))
}

func (c *featureController) Import(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ImportFeaturesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.Import(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import features", res))
}
