package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/errors"
	eventdto "go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/entity"
	eventservice "go-calendar-api/modules/event/service"
)

// fixedClock pins Now for deterministic IsToday and agenda labels.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeRepo stores events in memory and answers range queries the way
// the Postgres repository does.
type fakeRepo struct {
	events []entity.Event
}

func (r *fakeRepo) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	stored := *event
	stored.ID = uuid.New()
	r.events = append(r.events, stored)
	return &stored, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	for i := range r.events {
		if r.events[i].ID == id {
			found := r.events[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context, start, end *time.Time, search string) ([]entity.Event, error) {
	result := make([]entity.Event, 0)
	for _, e := range r.events {
		if start != nil && end != nil {
			startsIn := !e.StartDate.Before(*start) && !e.StartDate.After(*end)
			endsIn := !e.EndDate.Before(*start) && !e.EndDate.After(*end)
			spans := !e.StartDate.After(*start) && !e.EndDate.Before(*end)
			if !startsIn && !endsIn && !spans {
				continue
			}
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *fakeRepo) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	for i := range r.events {
		if r.events[i].ID == event.ID {
			r.events[i] = *event
			updated := *event
			return &updated, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func addEvent(r *fakeRepo, title string, start, end time.Time) {
	r.events = append(r.events, entity.Event{
		ID:        uuid.New(),
		Title:     title,
		StartDate: start,
		EndDate:   end,
		Color:     "#1976d2",
	})
}

func TestCalendarService_UnknownView(t *testing.T) {
	svc := NewCalendarService(&fakeRepo{}, fixedClock{now: date(2024, time.January, 8)})

	_, appErr := svc.GetView(context.Background(), "year", date(2024, time.January, 8))
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected invalid input, got %v", appErr)
	}
}

func TestCalendarService_MonthView(t *testing.T) {
	repo := &fakeRepo{}
	addEvent(repo, "Standup", at(2024, time.January, 8, 9, 0), at(2024, time.January, 8, 9, 30))
	addEvent(repo, "Late sync", at(2024, time.January, 8, 16, 0), at(2024, time.January, 8, 17, 0))

	now := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)
	svc := NewCalendarService(repo, fixedClock{now: now})

	view, appErr := svc.GetView(context.Background(), constants.ViewMonth, date(2024, time.January, 15))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if view.View != constants.ViewMonth {
		t.Errorf("expected view month, got %s", view.View)
	}
	if len(view.Days) != 35 {
		t.Fatalf("expected 35 day cells for January 2024, got %d", len(view.Days))
	}

	for i, cell := range view.Days {
		switch {
		case IsSameDay(cell.Date, date(2024, time.January, 8)):
			if !cell.IsToday {
				t.Error("January 8 should be marked today")
			}
			if !cell.InMonth {
				t.Error("January 8 belongs to the reference month")
			}
			if len(cell.Events) != 2 {
				t.Fatalf("expected 2 events on January 8, got %d", len(cell.Events))
			}
			if cell.Events[0].Title != "Standup" || cell.Events[1].Title != "Late sync" {
				t.Errorf("cell events not sorted by start: %s, %s",
					cell.Events[0].Title, cell.Events[1].Title)
			}
		case IsSameDay(cell.Date, date(2023, time.December, 31)):
			if cell.InMonth {
				t.Error("December 31 is an out-of-month filler cell")
			}
		default:
			if cell.IsToday {
				t.Errorf("cell %d (%s) wrongly marked today", i, cell.Date.Format("2006-01-02"))
			}
			if len(cell.Events) != 0 {
				t.Errorf("cell %s should be empty", cell.Date.Format("2006-01-02"))
			}
		}
	}
}

func TestCalendarService_WeekView(t *testing.T) {
	repo := &fakeRepo{}
	addEvent(repo, "Standup", at(2024, time.January, 8, 9, 0), at(2024, time.January, 8, 9, 30))

	svc := NewCalendarService(repo, fixedClock{now: date(2024, time.January, 8)})

	view, appErr := svc.GetView(context.Background(), constants.ViewWeek, date(2024, time.January, 8))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(view.Columns) != 7 {
		t.Fatalf("expected 7 columns, got %d", len(view.Columns))
	}
	if len(view.Hours) != 24 {
		t.Errorf("expected 24 hour labels, got %d", len(view.Hours))
	}
	if !IsSameDay(view.Columns[0].Date, date(2024, time.January, 7)) {
		t.Errorf("week should start on Sunday January 7, got %s",
			view.Columns[0].Date.Format("2006-01-02"))
	}

	monday := view.Columns[1]
	if !monday.IsToday {
		t.Error("Monday column should be marked today")
	}
	if len(monday.Events) != 1 {
		t.Fatalf("expected 1 positioned event on Monday, got %d", len(monday.Events))
	}
	if monday.Events[0].Top <= 0 || monday.Events[0].Height <= 0 {
		t.Errorf("expected positive placement, got top=%v height=%v",
			monday.Events[0].Top, monday.Events[0].Height)
	}
}

func TestCalendarService_DayView(t *testing.T) {
	repo := &fakeRepo{}
	addEvent(repo, "Standup", at(2024, time.January, 8, 9, 0), at(2024, time.January, 8, 9, 30))
	addEvent(repo, "Elsewhere", at(2024, time.January, 9, 9, 0), at(2024, time.January, 9, 10, 0))

	svc := NewCalendarService(repo, fixedClock{now: date(2024, time.January, 8)})

	view, appErr := svc.GetView(context.Background(), constants.ViewDay, date(2024, time.January, 8))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(view.Columns) != 1 {
		t.Fatalf("expected a single column, got %d", len(view.Columns))
	}

	col := view.Columns[0]
	if len(col.Events) != 1 {
		t.Fatalf("expected only the Standup, got %d events", len(col.Events))
	}
	if col.Events[0].Event.Title != "Standup" {
		t.Errorf("expected Standup, got %s", col.Events[0].Event.Title)
	}
}

func TestCalendarService_AgendaView(t *testing.T) {
	repo := &fakeRepo{}
	addEvent(repo, "Review", at(2024, time.January, 9, 14, 0), at(2024, time.January, 9, 15, 0))
	addEvent(repo, "Standup", at(2024, time.January, 8, 9, 0), at(2024, time.January, 8, 9, 30))
	addEvent(repo, "Late sync", at(2024, time.January, 8, 16, 0), at(2024, time.January, 8, 17, 0))
	addEvent(repo, "Planning", at(2024, time.January, 22, 10, 0), at(2024, time.January, 22, 11, 0))

	now := time.Date(2024, time.January, 8, 7, 0, 0, 0, time.UTC)
	svc := NewCalendarService(repo, fixedClock{now: now})

	view, appErr := svc.GetView(context.Background(), constants.ViewAgenda, date(2024, time.January, 8))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(view.Agenda) != 3 {
		t.Fatalf("expected 3 day groups, got %d", len(view.Agenda))
	}

	first := view.Agenda[0]
	if first.Label != "Today" {
		t.Errorf("expected label Today, got %q", first.Label)
	}
	if len(first.Events) != 2 {
		t.Fatalf("expected 2 events in the first group, got %d", len(first.Events))
	}
	if first.Events[0].Title != "Standup" || first.Events[1].Title != "Late sync" {
		t.Errorf("group events out of order: %s, %s", first.Events[0].Title, first.Events[1].Title)
	}

	second := view.Agenda[1]
	if second.Label != "Tomorrow" {
		t.Errorf("expected label Tomorrow, got %q", second.Label)
	}

	third := view.Agenda[2]
	if third.Label != "Monday, January 22, 2024" {
		t.Errorf("expected a full date label, got %q", third.Label)
	}
}

// TestCreateThenView runs a write through the event service and reads
// it back through the calendar views, against a shared repository.
func TestCreateThenView(t *testing.T) {
	repo := &fakeRepo{}
	events := eventservice.NewEventService(repo, nil, nil)
	calendar := NewCalendarService(repo, fixedClock{now: date(2024, time.January, 8)})

	start := at(2024, time.January, 8, 9, 0)
	end := at(2024, time.January, 8, 9, 30)
	_, appErr := events.Create(context.Background(), &eventdto.CreateEventRequest{
		Title:     "Standup",
		StartDate: &start,
		EndDate:   &end,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	day, appErr := calendar.GetView(context.Background(), constants.ViewDay, date(2024, time.January, 8))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(day.Columns[0].Events) != 1 || day.Columns[0].Events[0].Event.Title != "Standup" {
		t.Fatal("expected the created event in its day view")
	}

	nextDay, appErr := calendar.GetView(context.Background(), constants.ViewDay, date(2024, time.January, 9))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(nextDay.Columns[0].Events) != 0 {
		t.Fatal("the event must not appear on the following day")
	}

	month, appErr := calendar.GetView(context.Background(), constants.ViewMonth, date(2024, time.January, 15))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	found := false
	for _, cell := range month.Days {
		if IsSameDay(cell.Date, date(2024, time.January, 8)) && len(cell.Events) == 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the created event in the month grid")
	}
}
