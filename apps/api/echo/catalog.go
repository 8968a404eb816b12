package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/catalog"
)

type catalogApi struct {
	svc    *catalog.Service
	mirror core.Mirror
}

func registerCatalogAPI(g *echo.Group, svc *catalog.Service, mirror core.Mirror, adminMW echo.MiddlewareFunc) {
	api := catalogApi{
		svc:    svc,
		mirror: mirror,
	}

	g.GET("/projects", api.queryProjects)
	g.GET("/feedback", api.queryFeedback)
	g.GET("/webinars", api.queryWebinars)
	g.GET("/admin-status", api.adminStatus, asMiddlewares(adminMW)...)
}

// Handlers

func (api *catalogApi) queryProjects(ctx echo.Context) error {
	entries, err := api.svc.Projects(ctx.Request().Context(), queryFlag(ctx, "featured"), queryLimit(ctx))
	if err != nil {
		return errors.Wrap(err, "listing projects")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *catalogApi) queryFeedback(ctx echo.Context) error {
	entries, err := api.svc.Feedback(ctx.Request().Context(), queryFlag(ctx, "approved"), queryLimit(ctx))
	if err != nil {
		return errors.Wrap(err, "listing feedback")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *catalogApi) queryWebinars(ctx echo.Context) error {
	entries, err := api.svc.Webinars(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing webinars")
	}
	return ctx.JSON(http.StatusOK, entries)
}

// adminStatus reports remote-mirror reachability; useful when debugging
// Firestore credential problems from the admin dashboard.
func (api *catalogApi) adminStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.mirror.Status(ctx.Request().Context()))
}
