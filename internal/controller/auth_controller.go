package controller

import (
	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/pkg/serverutils"
	"schoolhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	OAuthLogin(ctx *fiber.Ctx) error
	OAuthCallback(ctx *fiber.Ctx) error
}

type authController struct {
	authService  service.IAuthService
	oauthService service.IOAuthService
}

func NewAuthController(authService service.IAuthService, oauthService service.IOAuthService) IAuthController {
	return &authController{
		authService:  authService,
		oauthService: oauthService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("login", c.Login)
	h.Post("refresh", c.Refresh)
	h.Get(":provider/login", c.OAuthLogin)
	h.Get(":provider/callback", c.OAuthCallback)

	protected := h.Group("")
	protected.Use(serverutils.JwtMiddleware)
	protected.Post("logout", c.Logout)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Refresh(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refresh token", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = ctx.BodyParser(&req) // body is optional

	if err := c.authService.Logout(ctx.Context(), userId, req.RefreshToken); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success logout", nil))
}

func (c *authController) OAuthLogin(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")

	url, err := c.oauthService.GetLoginURL(provider)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Redirect(url, fiber.StatusTemporaryRedirect)
}

func (c *authController) OAuthCallback(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")
	code := ctx.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing authorization code")
	}

	res, err := c.oauthService.HandleCallback(ctx.Context(), provider, code)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}
