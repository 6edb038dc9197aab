package controller

import (
	"time"

	"github.com/labstack/echo/v4"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/controller"
	"go-calendar-api/modules/calendar/service"
)

// CalendarController handles calendar view HTTP requests.
type CalendarController struct {
	controller.BaseController
	CalendarService service.CalendarServiceInterface
}

// NewCalendarController creates a new controller.
func NewCalendarController(svc service.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController:  controller.NewBaseController(),
		CalendarService: svc,
	}
}

// GetView handles GET /calendar/view
// @Summary Get a calendar view
// @Description Returns the render-ready structure for a month, week, day or agenda view around a reference date
// @Tags Calendar
// @Produce json
// @Param view query string false "View: month, week, day or agenda (default month)"
// @Param date query string false "Reference date (RFC3339 or YYYY-MM-DD, default now)"
// @Success 200 {object} controller.Response
// @Failure 400 {object} controller.Response
// @Router /calendar/view [get]
func (c *CalendarController) GetView(ctx echo.Context) error {
	view := ctx.QueryParam("view")
	if view == "" {
		view = constants.ViewMonth
	}

	ref := time.Now()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", raw)
			if err != nil {
				return c.BadRequest(ctx, "Invalid date parameter")
			}
		}
		ref = parsed
	}

	result, appErr := c.CalendarService.GetView(ctx.Request().Context(), view, ref)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "")
}
