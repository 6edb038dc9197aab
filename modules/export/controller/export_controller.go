package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/controller"
	"go-calendar-api/modules/export/service"
)

// ExportController handles calendar export HTTP requests.
type ExportController struct {
	controller.BaseController
	ExportService service.ExportServiceInterface
}

// NewExportController creates a new controller.
func NewExportController(svc service.ExportServiceInterface) *ExportController {
	return &ExportController{
		BaseController: controller.NewBaseController(),
		ExportService:  svc,
	}
}

// Export handles GET /events/export
// @Summary Export the calendar
// @Description Streams every event as an ICS calendar file
// @Tags Export
// @Produce text/calendar
// @Success 200 {string} string "ICS payload"
// @Router /events/export [get]
func (c *ExportController) Export(ctx echo.Context) error {
	data, appErr := c.ExportService.ExportICS(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	filename := service.ExportFileName(constants.CalendarName)
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return ctx.Blob(http.StatusOK, constants.ICSContentType, data)
}
