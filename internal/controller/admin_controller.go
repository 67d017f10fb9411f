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

// IAdminController exposes the platform operator surface: the global
// feature catalog, tenant provisioning and entitlement management.
type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	catalogService     service.ICatalogService
	schoolService      service.ISchoolService
	entitlementService service.IEntitlementService
}

func NewAdminController(
	catalogService service.ICatalogService,
	schoolService service.ISchoolService,
	entitlementService service.IEntitlementService,
) IAdminController {
	return &adminController{
		catalogService:     catalogService,
		schoolService:      schoolService,
		entitlementService: entitlementService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRoles(entity.UserRoleSuperAdmin))

	h.Get("features", c.GetAllFeatures)
	h.Post("features", c.CreateFeature)
	h.Get("features/:id", c.GetFeature)
	h.Put("features/:id", c.UpdateFeature)
	h.Delete("features/:id", c.DeleteFeature)

	h.Get("schools", c.GetAllSchools)
	h.Post("schools", c.CreateSchool)

	h.Get("schools/:schoolId/entitlements", c.ListEntitlements)
	h.Post("schools/:schoolId/entitlements", c.GrantFeature)
	h.Put("schools/:schoolId/entitlements/:featureId", c.ToggleEntitlement)
}

func (c *adminController) GetAllFeatures(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetAllFeatures(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list features", res))
}

func (c *adminController) GetFeature(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	res, err := c.catalogService.GetFeature(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Feature not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show feature", res))
}

func (c *adminController) CreateFeature(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateFeature(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, navigation.ErrCatalogIntegrity) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create feature", res))
}

func (c *adminController) UpdateFeature(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	var req dto.UpdateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateFeature(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, navigation.ErrCatalogIntegrity) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Feature not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update feature", res))
}

func (c *adminController) DeleteFeature(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	if err := c.catalogService.DeleteFeature(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete feature", nil))
}

func (c *adminController) GetAllSchools(ctx *fiber.Ctx) error {
	res, err := c.schoolService.GetAllSchools(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list schools", res))
}

func (c *adminController) CreateSchool(ctx *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.schoolService.CreateSchool(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create school", res))
}

func (c *adminController) ListEntitlements(ctx *fiber.Ctx) error {
	schoolId, err := uuid.Parse(ctx.Params("schoolId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid school id")
	}

	res, err := c.entitlementService.ListEntitlements(ctx.Context(), schoolId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list entitlements", res))
}

func (c *adminController) GrantFeature(ctx *fiber.Ctx) error {
	schoolId, err := uuid.Parse(ctx.Params("schoolId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid school id")
	}

	var req dto.GrantFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entitlementService.GrantFeature(ctx.Context(), schoolId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSchoolNotFound), errors.Is(err, service.ErrFeatureNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyGranted):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success grant feature", res))
}

func (c *adminController) ToggleEntitlement(ctx *fiber.Ctx) error {
	schoolId, err := uuid.Parse(ctx.Params("schoolId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid school id")
	}
	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feature id")
	}

	var req dto.ToggleEntitlementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.entitlementService.ToggleEntitlement(ctx.Context(), schoolId, featureId, req.Enabled)
	if err != nil {
		if errors.Is(err, service.ErrEntitlementNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle entitlement", res))
}
