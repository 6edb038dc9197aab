package calendar

import (
	"github.com/labstack/echo/v4"

	"go-calendar-api/core/database"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/calendar/controller"
	"go-calendar-api/modules/calendar/router"
	"go-calendar-api/modules/calendar/service"
	"go-calendar-api/modules/event/repository"
)

// Init initializes the calendar module and registers routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewCalendarService(repo, service.NewSystemClock())
	ctrl := controller.NewCalendarController(svc)
	rtr := router.NewCalendarRouter(ctrl)

	rtr.Setup(e, mw)
}
