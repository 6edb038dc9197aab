package export

import (
	"github.com/labstack/echo/v4"

	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/event/repository"
	"go-calendar-api/modules/export/controller"
	"go-calendar-api/modules/export/router"
	"go-calendar-api/modules/export/service"
)

// Init initializes the export module and registers routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewExportService(repo)
	ctrl := controller.NewExportController(svc)
	rtr := router.NewExportRouter(ctrl)

	rtr.Setup(e, mw)
}
