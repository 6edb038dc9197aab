package service

import (
	"context"
	"time"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/errors"
	"go-calendar-api/modules/calendar/dto"
	eventdto "go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/entity"
	"go-calendar-api/modules/event/repository"
)

// CalendarService composes the grid and layout primitives into the
// render-ready structure for a view selection plus reference date.
type CalendarService struct {
	repo  repository.EventRepositoryInterface
	clock Clock
}

// CalendarServiceInterface defines the service contract.
type CalendarServiceInterface interface {
	GetView(ctx context.Context, view string, ref time.Time) (*dto.CalendarViewResponse, *errors.AppError)
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(repo repository.EventRepositoryInterface, clock Clock) CalendarServiceInterface {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &CalendarService{
		repo:  repo,
		clock: clock,
	}
}

// GetView builds the derived structure for one of the four views.
func (s *CalendarService) GetView(ctx context.Context, view string, ref time.Time) (*dto.CalendarViewResponse, *errors.AppError) {
	switch view {
	case constants.ViewMonth:
		return s.monthView(ctx, ref)
	case constants.ViewWeek:
		return s.weekView(ctx, ref)
	case constants.ViewDay:
		return s.dayView(ctx, ref)
	case constants.ViewAgenda:
		return s.agendaView(ctx, ref)
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown calendar view", nil)
	}
}

func (s *CalendarService) monthView(ctx context.Context, ref time.Time) (*dto.CalendarViewResponse, *errors.AppError) {
	days := MonthGrid(ref)

	events, appErr := s.fetchRange(ctx, days[0], EndOfDay(days[len(days)-1]))
	if appErr != nil {
		return nil, appErr
	}

	now := s.clock.Now()
	cells := make([]dto.DayCell, 0, len(days))
	for _, day := range days {
		dayEvents := SortByStart(EventsOnDay(events, day))
		cells = append(cells, dto.DayCell{
			Date:    day,
			InMonth: IsSameMonth(day, ref),
			IsToday: IsToday(day, now),
			Events:  eventdto.ToEventResponses(dayEvents),
		})
	}

	return &dto.CalendarViewResponse{
		View:          constants.ViewMonth,
		ReferenceDate: ref,
		Days:          cells,
	}, nil
}

func (s *CalendarService) weekView(ctx context.Context, ref time.Time) (*dto.CalendarViewResponse, *errors.AppError) {
	days := WeekGrid(ref)

	events, appErr := s.fetchRange(ctx, days[0], EndOfDay(days[len(days)-1]))
	if appErr != nil {
		return nil, appErr
	}

	return &dto.CalendarViewResponse{
		View:          constants.ViewWeek,
		ReferenceDate: ref,
		Hours:         HoursOfDay(),
		Columns:       s.buildColumns(days, events),
	}, nil
}

func (s *CalendarService) dayView(ctx context.Context, ref time.Time) (*dto.CalendarViewResponse, *errors.AppError) {
	day := StartOfDay(ref)

	events, appErr := s.fetchRange(ctx, day, EndOfDay(day))
	if appErr != nil {
		return nil, appErr
	}

	return &dto.CalendarViewResponse{
		View:          constants.ViewDay,
		ReferenceDate: ref,
		Hours:         HoursOfDay(),
		Columns:       s.buildColumns([]time.Time{day}, events),
	}, nil
}

// agendaView lists the reference month's events sorted by start time
// and grouped by day.
func (s *CalendarService) agendaView(ctx context.Context, ref time.Time) (*dto.CalendarViewResponse, *errors.AppError) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	events, appErr := s.fetchRange(ctx, first, EndOfDay(last))
	if appErr != nil {
		return nil, appErr
	}

	sorted := SortByStart(events)
	now := s.clock.Now()

	var groups []dto.AgendaGroup
	for _, e := range sorted {
		day := StartOfDay(e.StartDate)
		if len(groups) == 0 || !IsSameDay(groups[len(groups)-1].Date, day) {
			groups = append(groups, dto.AgendaGroup{
				Date:  day,
				Label: agendaLabel(day, now),
			})
		}
		last := &groups[len(groups)-1]
		last.Events = append(last.Events, *eventdto.ToEventResponse(&e))
	}

	return &dto.CalendarViewResponse{
		View:          constants.ViewAgenda,
		ReferenceDate: ref,
		Agenda:        groups,
	}, nil
}

func (s *CalendarService) buildColumns(days []time.Time, events []entity.Event) []dto.DayColumn {
	now := s.clock.Now()
	columns := make([]dto.DayColumn, 0, len(days))
	for _, day := range days {
		dayEvents := SortByStart(EventsOnDay(events, day))

		positioned := make([]dto.PositionedEvent, 0, len(dayEvents))
		for _, e := range dayEvents {
			top, height := PositionInDay(e, day)
			positioned = append(positioned, dto.PositionedEvent{
				Event:  *eventdto.ToEventResponse(&e),
				Top:    top,
				Height: height,
			})
		}

		columns = append(columns, dto.DayColumn{
			Date:    day,
			IsToday: IsToday(day, now),
			Events:  positioned,
		})
	}
	return columns
}

func (s *CalendarService) fetchRange(ctx context.Context, start, end time.Time) ([]entity.Event, *errors.AppError) {
	events, err := s.repo.List(ctx, &start, &end, "")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load events", err)
	}
	return events, nil
}

func agendaLabel(day, now time.Time) string {
	switch {
	case IsSameDay(day, now):
		return "Today"
	case IsSameDay(day, now.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return day.Format("Monday, January 2, 2006")
	}
}
