package router

import (
	"github.com/labstack/echo/v4"

	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/calendar/controller"
)

// CalendarRouter handles calendar view routes.
type CalendarRouter struct {
	CalendarController *controller.CalendarController
}

// NewCalendarRouter creates a new router.
func NewCalendarRouter(calendarController *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		CalendarController: calendarController,
	}
}

// Setup registers calendar routes.
func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	calendarRoutes := v1.Group("/calendar")
	calendarRoutes.GET("/view", r.CalendarController.GetView)
}
