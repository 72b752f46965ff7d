package routes

import (
	"skill-trade/internal/delivery/http/handler"
	"skill-trade/internal/delivery/http/middleware"
	"skill-trade/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires the wire contract at the root: the historical paths carry no
// version prefix and existing clients depend on them verbatim.
type Registry struct {
	Auth     *handler.AuthHandler
	Skills   *handler.SkillHandler
	Messages *handler.MessageHandler
	Matches  *handler.MatchHandler
	Health   *handler.HealthHandler
	WS       *ws.Handler

	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Auth != nil {
		r.Auth.RegisterRoutes(app)
	}
	if r.Skills != nil {
		r.Skills.RegisterPublicRoutes(app)
	}
	if r.Messages != nil {
		r.Messages.RegisterPublicRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws", r.WS.HandleMessagesWS)
	}

	if r.AuthMw == nil {
		return
	}
	protected := app.Group("", r.AuthMw.Middleware())
	if r.Skills != nil {
		r.Skills.RegisterProtectedRoutes(protected)
	}
	if r.Messages != nil {
		r.Messages.RegisterProtectedRoutes(protected)
	}
	if r.Matches != nil {
		r.Matches.RegisterProtectedRoutes(protected)
	}
}
