package controller

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"go-calendar-api/core/controller"
	"go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/service"
)

// EventController handles event HTTP requests.
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

// NewEventController creates a new controller.
func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// parseTimeParam accepts RFC3339 or a plain calendar date.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// List handles GET /events
// @Summary List events
// @Description List events, optionally narrowed to a date range and a text search over title/description
// @Tags Events
// @Produce json
// @Param start query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Param search query string false "Free-text search"
// @Success 200 {object} controller.Response
// @Router /events [get]
func (c *EventController) List(ctx echo.Context) error {
	start, err := parseTimeParam(ctx.QueryParam("start"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid start parameter")
	}
	end, err := parseTimeParam(ctx.QueryParam("end"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid end parameter")
	}

	q := dto.ListEventsQuery{
		Start:  start,
		End:    end,
		Search: ctx.QueryParam("search"),
	}

	result, appErr := c.EventService.List(ctx.Request().Context(), q)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.ListResponse(ctx, result, len(result))
}

// Create handles POST /events
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event fields"
// @Success 201 {object} controller.Response
// @Failure 400 {object} controller.Response
// @Router /events [post]
func (c *EventController) Create(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(ctx, "Invalid request body")
	}

	result, appErr := c.EventService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result)
}

// Get handles GET /events/:id
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.Response
// @Failure 404 {object} controller.Response
// @Router /events/{id} [get]
func (c *EventController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid event ID")
	}

	result, appErr := c.EventService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "")
}

// Update handles PUT /events/:id
// @Summary Update an event
// @Description Applies a partial field set; validation re-runs on the merged document
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} controller.Response
// @Failure 400 {object} controller.Response
// @Failure 404 {object} controller.Response
// @Router /events/{id} [put]
func (c *EventController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(ctx, "Invalid request body")
	}

	result, appErr := c.EventService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "")
}

// Delete handles DELETE /events/:id
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.Response
// @Failure 404 {object} controller.Response
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid event ID")
	}

	if appErr := c.EventService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}
