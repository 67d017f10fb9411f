package controller

import (
	"schoolhub-be/internal/pkg/serverutils"
	"schoolhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMenuController interface {
	RegisterRoutes(r fiber.Router)
	GetMenu(ctx *fiber.Ctx) error
	MatchPage(ctx *fiber.Ctx) error
}

type menuController struct {
	menuService service.IMenuService
}

func NewMenuController(menuService service.IMenuService) IMenuController {
	return &menuController{
		menuService: menuService,
	}
}

func (c *menuController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/menu")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetMenu)
	h.Get(":featureSlug/:pageSlug?", c.MatchPage)
}

// GetMenu returns the resolved sidebar for the session. Gated sessions
// get 200 with an empty, gated payload; gating is policy, not an error.
func (c *menuController) GetMenu(ctx *fiber.Ctx) error {
	schoolId := serverutils.SchoolIdFromLocals(ctx)
	role := serverutils.RoleFromLocals(ctx)

	res, err := c.menuService.GetMenu(ctx.Context(), schoolId, role)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve menu", res))
}

// MatchPage routes a (featureSlug, pageSlug) request. All match variants
// are 200 payloads; the client renders found, unimplemented and gated
// states itself.
func (c *menuController) MatchPage(ctx *fiber.Ctx) error {
	schoolId := serverutils.SchoolIdFromLocals(ctx)
	role := serverutils.RoleFromLocals(ctx)

	featureSlug := ctx.Params("featureSlug")
	pageSlug := ctx.Params("pageSlug")

	res, err := c.menuService.MatchPage(ctx.Context(), schoolId, role, featureSlug, pageSlug)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success match page", res))
}
