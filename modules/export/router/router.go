package router

import (
	"github.com/labstack/echo/v4"

	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/export/controller"
)

// ExportRouter handles export routes.
type ExportRouter struct {
	ExportController *controller.ExportController
}

// NewExportRouter creates a new router.
func NewExportRouter(exportController *controller.ExportController) *ExportRouter {
	return &ExportRouter{
		ExportController: exportController,
	}
}

// Setup registers export routes.
func (r *ExportRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/events/export", r.ExportController.Export)
}
