package controller

import (
	"errors"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/pkg/serverutils"
	"schoolhub-be/internal/service"
	"schoolhub-be/pkg/navigation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ISchoolController exposes the school admin surface: per-tenant menu
// overrides. The tenant is always taken from the token, never from the
// request, so an admin can only touch their own school.
type ISchoolController interface {
	RegisterRoutes(r fiber.Router)
}

type schoolController struct {
	entitlementService service.IEntitlementService
}

func NewSchoolController(entitlementService service.IEntitlementService) ISchoolController {
	return &schoolController{
		entitlementService: entitlementService,
	}
}

func (c *schoolController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/school")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRoles(entity.UserRoleSchoolAdmin))

	h.Get("menu-overrides/:featureId", c.GetMenuOverride)
	h.Put("menu-overrides/:featureId", c.SetMenuOverride)
	h.Delete("menu-overrides/:featureId", c.ClearMenuOverride)
}

func (c *schoolController) schoolId(ctx *fiber.Ctx) (uuid.UUID, error) {
	schoolId := serverutils.SchoolIdFromLocals(ctx)
	if schoolId == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No school binding")
	}
	return *schoolId, nil
}

func (c *schoolController) GetMenuOverride(ctx *fiber.Ctx) error {
	schoolId, err := c.schoolId(ctx)
	if err != nil {
		return err
	}
	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	res, err := c.entitlementService.GetMenuOverride(ctx.Context(), schoolId, featureId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "No override set")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show menu override", res))
}

func (c *schoolController) SetMenuOverride(ctx *fiber.Ctx) error {
	schoolId, err := c.schoolId(ctx)
	if err != nil {
		return err
	}
	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	var req dto.SetMenuOverrideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entitlementService.SetMenuOverride(ctx.Context(), schoolId, featureId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntitlementNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, navigation.ErrCatalogIntegrity):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set menu override", res))
}

func (c *schoolController) ClearMenuOverride(ctx *fiber.Ctx) error {
	schoolId, err := c.schoolId(ctx)
	if err != nil {
		return err
	}
	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	if err := c.entitlementService.ClearMenuOverride(ctx.Context(), schoolId, featureId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear menu override", nil))
}
