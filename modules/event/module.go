package event

import (
	"github.com/labstack/echo/v4"

	"go-calendar-api/core/cache"
	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/event/controller"
	"go-calendar-api/modules/event/repository"
	"go-calendar-api/modules/event/router"
	"go-calendar-api/modules/event/service"
)

// Init initializes the event module and registers routes.
func Init(e *echo.Echo, db database.IDatabase, c *cache.Cache, queue service.TaskQueue, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, c, queue)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}
