package controller

import (
	"schoolhub-be/internal/pkg/serverutils"
	internalWS "schoolhub-be/internal/websocket"
	"schoolhub-be/pkg/navigation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// MenuSocketController upgrades staff connections onto the menu refresh
// channel. Only staff with a school binding connect; there is nothing to
// push to anyone else.
type MenuSocketController struct {
	hub *internalWS.Hub
}

func NewMenuSocketController(hub *internalWS.Hub) *MenuSocketController {
	return &MenuSocketController{hub: hub}
}

func (c *MenuSocketController) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/menu", serverutils.JwtMiddleware, c.ServeWs)
}

func (c *MenuSocketController) ServeWs(ctx *fiber.Ctx) error {
	role := serverutils.RoleFromLocals(ctx)
	if !navigation.CanViewMenu(role) {
		return fiber.ErrForbidden
	}

	schoolId := serverutils.SchoolIdFromLocals(ctx)
	if schoolId == nil {
		return fiber.ErrForbidden
	}

	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		sid := *schoolId
		return websocket.New(func(conn *websocket.Conn) {
			internalWS.ServeWs(c.hub, conn, sid, userId)
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
