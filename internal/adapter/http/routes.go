package http

import (
	mw "github.com/cagb07/gestor-centros-app/internal/adapter/middleware"
	"github.com/cagb07/gestor-centros-app/internal/domain/user"
	"github.com/cagb07/gestor-centros-app/internal/session"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health      *Handler
	Auth        *AuthHandler
	Areas       *AreaHandler
	Templates   *TemplateHandler
	Submissions *SubmissionHandler
	Users       *UserHandler
	Catalog     *CatalogHandler
}

// Register wires every route. Administration lives under /admin and is
// role-gated; everything else only needs a valid session.
func Register(e *echo.Echo, h Handlers, sessions session.Store) {
	e.Validator = NewValidator()

	e.GET("/health", h.Health.Health)
	e.POST("/login", h.Auth.Login)

	authed := e.Group("", mw.Session(sessions))
	authed.POST("/logout", h.Auth.Logout)
	authed.GET("/me", h.Auth.Me)

	authed.GET("/areas", h.Areas.List)
	authed.GET("/areas/:area_id/templates", h.Templates.ListByArea)
	authed.GET("/templates/:id/fields", h.Templates.Fields)
	authed.GET("/templates/:id/form", h.Templates.RenderForm)

	authed.GET("/centros", h.Catalog.Search)
	authed.GET("/centros/facets", h.Catalog.Facets)
	authed.POST("/centros/attach", h.Catalog.Attach)
	authed.DELETE("/centros/attach", h.Catalog.Detach)

	authed.POST("/submissions", h.Submissions.Submit)
	authed.GET("/submissions/mine", h.Submissions.ListMine)

	admin := authed.Group("/admin", mw.RequireRole(user.RoleAdmin))
	admin.POST("/areas", h.Areas.Create)
	admin.PUT("/areas/:id", h.Areas.Update)
	admin.DELETE("/areas/:id", h.Areas.Delete)

	admin.POST("/templates", h.Templates.Save)
	admin.DELETE("/templates/:id", h.Templates.Delete)

	admin.POST("/users", h.Users.Create)
	admin.GET("/users", h.Users.List)
	admin.PUT("/users/:id", h.Users.Update)
	admin.DELETE("/users/:id", h.Users.Delete)

	admin.GET("/submissions", h.Submissions.ListAll)
	admin.GET("/submissions/unreviewed", h.Submissions.ListUnreviewed)
	admin.PUT("/submissions/:id/review", h.Submissions.SetReviewed)
	admin.GET("/dashboard", h.Submissions.Stats)
}
