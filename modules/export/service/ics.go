package service

import (
	"context"

	ics "github.com/arran4/golang-ical"
	"github.com/gosimple/slug"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/errors"
	"go-calendar-api/modules/event/entity"
	"go-calendar-api/modules/event/repository"
)

// ExportService renders the event set as an ICS calendar.
type ExportService struct {
	repo repository.EventRepositoryInterface
}

// ExportServiceInterface defines the service contract.
type ExportServiceInterface interface {
	ExportICS(ctx context.Context) ([]byte, *errors.AppError)
}

// NewExportService creates a new export service.
func NewExportService(repo repository.EventRepositoryInterface) *ExportService {
	return &ExportService{repo: repo}
}

// ExportICS renders every stored event into one ICS payload.
func (s *ExportService) ExportICS(ctx context.Context) ([]byte, *errors.AppError) {
	events, err := s.repo.List(ctx, nil, nil, "")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load events", err)
	}

	return []byte(BuildCalendar(events, constants.CalendarName)), nil
}

// BuildCalendar serializes events as a VCALENDAR. Recurrence metadata
// is not emitted as RRULE since events are never expanded into
// occurrences.
func BuildCalendar(events []entity.Event, name string) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//go-calendar-api//EN")
	cal.SetXWRCalName(name)

	for i := range events {
		e := &events[i]

		ev := cal.AddEvent(e.ID.String())
		ev.SetSummary(e.Title)
		ev.SetCreatedTime(e.CreatedAt)
		ev.SetModifiedAt(e.UpdatedAt)
		ev.SetDtStampTime(e.UpdatedAt)

		if e.IsAllDay {
			ev.SetAllDayStartAt(e.StartDate)
			ev.SetAllDayEndAt(e.EndDate)
		} else {
			ev.SetStartAt(e.StartDate)
			ev.SetEndAt(e.EndDate)
		}

		if e.Description != nil {
			ev.SetDescription(*e.Description)
		}
		if e.Location != nil {
			ev.SetLocation(*e.Location)
		}
		ev.SetProperty(ics.ComponentProperty("COLOR"), e.Color)
	}

	return cal.Serialize()
}

// ExportFileName slugifies the calendar name into a download filename.
func ExportFileName(name string) string {
	return slug.Make(name) + ".ics"
}
