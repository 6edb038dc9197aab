package router

import (
	"github.com/labstack/echo/v4"

	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/event/controller"
)

// EventRouter handles event routes.
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router.
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes.
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	eventRoutes := v1.Group("/events")
	eventRoutes.GET("", r.EventController.List)
	eventRoutes.POST("", r.EventController.Create)
	eventRoutes.GET("/:id", r.EventController.Get)
	eventRoutes.PUT("/:id", r.EventController.Update)
	eventRoutes.DELETE("/:id", r.EventController.Delete)
}
