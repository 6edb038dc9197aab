package dto

import (
	"time"

	"go-calendar-api/modules/event/entity"
)

// ===================== Request DTOs =====================

// RecurrenceRequest mirrors the recurrence sub-schema. Interval is a
// pointer so an omitted value can be defaulted to 1 while an explicit 0
// is rejected by validation.
type RecurrenceRequest struct {
	Enabled    bool       `json:"enabled"`
	Frequency  string     `json:"frequency"`
	Interval   *int       `json:"interval"`
	EndDate    *time.Time `json:"endDate"`
	DaysOfWeek []int      `json:"daysOfWeek"`
}

// CreateEventRequest for creating a new event.
type CreateEventRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	StartDate   *time.Time         `json:"startDate"`
	EndDate     *time.Time         `json:"endDate"`
	Location    string             `json:"location"`
	Color       string             `json:"color"`
	IsAllDay    bool               `json:"isAllDay"`
	Recurring   *RecurrenceRequest `json:"recurring"`
}

// UpdateEventRequest carries a partial field set. Only non-nil fields
// are applied to the stored event; validation re-runs on the merged
// result.
type UpdateEventRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	StartDate   *time.Time         `json:"startDate"`
	EndDate     *time.Time         `json:"endDate"`
	Location    *string            `json:"location"`
	Color       *string            `json:"color"`
	IsAllDay    *bool              `json:"isAllDay"`
	Recurring   *RecurrenceRequest `json:"recurring"`
}

// ListEventsQuery narrows GET /events. Start and End must be supplied
// together to activate range filtering.
type ListEventsQuery struct {
	Start  *time.Time
	End    *time.Time
	Search string
}

// ===================== Response DTOs =====================

type RecurrenceResponse struct {
	Enabled    bool       `json:"enabled"`
	Frequency  string     `json:"frequency"`
	Interval   int        `json:"interval"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	DaysOfWeek []int      `json:"daysOfWeek,omitempty"`
}

type EventResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	Location    string              `json:"location,omitempty"`
	Color       string              `json:"color"`
	IsAllDay    bool                `json:"isAllDay"`
	Recurring   *RecurrenceResponse `json:"recurring,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ===================== Mapper Functions =====================

// ToRecurrence maps the request sub-structure onto the entity, applying
// the interval and frequency defaults for omitted fields.
func ToRecurrence(req *RecurrenceRequest) entity.Recurrence {
	if req == nil {
		return entity.Recurrence{}
	}

	rec := entity.Recurrence{
		Enabled:    req.Enabled,
		Frequency:  entity.RecurrenceFrequency(req.Frequency),
		EndDate:    req.EndDate,
		DaysOfWeek: req.DaysOfWeek,
	}
	if req.Frequency == "" {
		rec.Frequency = entity.FrequencyWeekly
	}
	if req.Interval != nil {
		rec.Interval = *req.Interval
	} else {
		rec.Interval = 1
	}
	return rec
}

// ToEventResponse maps entity to DTO.
func ToEventResponse(e *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:        e.ID.String(),
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Color:     e.Color,
		IsAllDay:  e.IsAllDay,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if e.Description != nil {
		resp.Description = *e.Description
	}
	if e.Location != nil {
		resp.Location = *e.Location
	}
	if !e.Recurring.IsZero() {
		resp.Recurring = &RecurrenceResponse{
			Enabled:    e.Recurring.Enabled,
			Frequency:  string(e.Recurring.Frequency),
			Interval:   e.Recurring.Interval,
			EndDate:    e.Recurring.EndDate,
			DaysOfWeek: e.Recurring.DaysOfWeek,
		}
	}

	return resp
}

// ToEventResponses maps a slice of entities.
func ToEventResponses(events []entity.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *ToEventResponse(&events[i]))
	}
	return result
}
