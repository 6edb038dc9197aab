package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"go-calendar-api/core/errors"
	"go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/entity"
)

// fakeEventRepo is an in-memory stand-in for the Postgres repository.
type fakeEventRepo struct {
	events map[uuid.UUID]entity.Event
	order  []uuid.UUID
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]entity.Event)}
}

func (r *fakeEventRepo) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	stored := *event
	stored.ID = uuid.New()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.events[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	if e, ok := r.events[id]; ok {
		found := e
		return &found, nil
	}
	return nil, nil
}

func (r *fakeEventRepo) List(ctx context.Context, start, end *time.Time, search string) ([]entity.Event, error) {
	var result []entity.Event
	for _, id := range r.order {
		e, ok := r.events[id]
		if !ok {
			continue
		}
		if start != nil && end != nil && !intersects(e, *start, *end) {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		result = append(result, e)
	}
	// Mirror the repository's ORDER BY start_date.
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].StartDate.Before(result[j-1].StartDate); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if _, ok := r.events[event.ID]; !ok {
		return nil, nil
	}
	stored := *event
	stored.UpdatedAt = time.Now()
	r.events[event.ID] = stored
	return &stored, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.events, id)
	return nil
}

func intersects(e entity.Event, start, end time.Time) bool {
	startsIn := !e.StartDate.Before(start) && !e.StartDate.After(end)
	endsIn := !e.EndDate.Before(start) && !e.EndDate.After(end)
	spans := !e.StartDate.After(start) && !e.EndDate.Before(end)
	return startsIn || endsIn || spans
}

func matchesSearch(e entity.Event, search string) bool {
	if strings.Contains(strings.ToLower(e.Title), strings.ToLower(search)) {
		return true
	}
	return e.Description != nil &&
		strings.Contains(strings.ToLower(*e.Description), strings.ToLower(search))
}

func timePtr(t time.Time) *time.Time { return &t }
func strPtr(s string) *string        { return &s }

func newTestService() (EventServiceInterface, *fakeEventRepo) {
	repo := newFakeEventRepo()
	return NewEventService(repo, nil, nil), repo
}

func createRequest() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:     "Standup",
		StartDate: timePtr(time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC)),
		EndDate:   timePtr(time.Date(2024, time.January, 8, 9, 30, 0, 0, time.UTC)),
	}
}

func TestEventService_Create(t *testing.T) {
	svc, _ := newTestService()

	resp, appErr := svc.Create(context.Background(), createRequest())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Title != "Standup" {
		t.Errorf("expected title Standup, got %q", resp.Title)
	}
	if resp.Color != "#1976d2" {
		t.Errorf("expected default color, got %q", resp.Color)
	}
	if resp.ID == "" {
		t.Error("expected an assigned ID")
	}
}

func TestEventService_Create_TrimsStrings(t *testing.T) {
	svc, _ := newTestService()

	req := createRequest()
	req.Title = "  Standup  "
	req.Location = "  Room 4  "

	resp, appErr := svc.Create(context.Background(), req)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Title != "Standup" {
		t.Errorf("expected trimmed title, got %q", resp.Title)
	}
	if resp.Location != "Room 4" {
		t.Errorf("expected trimmed location, got %q", resp.Location)
	}
}

func TestEventService_Create_ValidationFailure(t *testing.T) {
	svc, _ := newTestService()

	req := createRequest()
	req.Title = ""
	req.Color = "blue"

	_, appErr := svc.Create(context.Background(), req)
	if appErr == nil {
		t.Fatal("expected a validation error")
	}
	if appErr.Code != errors.ErrValidation {
		t.Errorf("expected code %s, got %s", errors.ErrValidation, appErr.Code)
	}
	verrs, ok := appErr.Details.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors details, got %T", appErr.Details)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(verrs))
	}
}

func TestEventService_Create_RecurrenceDefaults(t *testing.T) {
	svc, _ := newTestService()

	req := createRequest()
	req.Recurring = &dto.RecurrenceRequest{Enabled: true}

	resp, appErr := svc.Create(context.Background(), req)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Recurring == nil {
		t.Fatal("expected recurrence in response")
	}
	if resp.Recurring.Interval != 1 {
		t.Errorf("expected default interval 1, got %d", resp.Recurring.Interval)
	}
	if resp.Recurring.Frequency != "weekly" {
		t.Errorf("expected default frequency weekly, got %q", resp.Recurring.Frequency)
	}
}

func TestEventService_Create_RejectsExplicitZeroInterval(t *testing.T) {
	svc, _ := newTestService()

	zero := 0
	req := createRequest()
	req.Recurring = &dto.RecurrenceRequest{Enabled: true, Frequency: "daily", Interval: &zero}

	_, appErr := svc.Create(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrValidation {
		t.Fatalf("expected validation error, got %v", appErr)
	}
}

func TestEventService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, appErr := svc.GetByID(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not found, got %v", appErr)
	}
}

func TestEventService_Update_MergeRevalidates(t *testing.T) {
	svc, _ := newTestService()

	created, appErr := svc.Create(context.Background(), createRequest())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	id := uuid.MustParse(created.ID)

	// Moving only the end date before the unchanged start date must be
	// caught by validation of the merged document.
	_, appErr = svc.Update(context.Background(), id, &dto.UpdateEventRequest{
		EndDate: timePtr(time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC)),
	})
	if appErr == nil || appErr.Code != errors.ErrValidation {
		t.Fatalf("expected validation error, got %v", appErr)
	}

	// A partial update leaves untouched fields in place.
	updated, appErr := svc.Update(context.Background(), id, &dto.UpdateEventRequest{
		Title: strPtr("Daily standup"),
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if updated.Title != "Daily standup" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	if !updated.StartDate.Equal(created.StartDate) {
		t.Error("start date must be unchanged by a title-only update")
	}
}

func TestEventService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, appErr := svc.Update(context.Background(), uuid.New(), &dto.UpdateEventRequest{
		Title: strPtr("ghost"),
	})
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not found, got %v", appErr)
	}
}

func TestEventService_Delete(t *testing.T) {
	svc, _ := newTestService()

	created, appErr := svc.Create(context.Background(), createRequest())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	id := uuid.MustParse(created.ID)

	if appErr := svc.Delete(context.Background(), id); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if _, appErr := svc.GetByID(context.Background(), id); appErr == nil {
		t.Error("expected the event to be gone")
	}
	if appErr := svc.Delete(context.Background(), id); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not found on double delete, got %v", appErr)
	}
}

func TestEventService_List_Search(t *testing.T) {
	svc, _ := newTestService()

	first := createRequest()
	second := createRequest()
	second.Title = "Sprint review"

	if _, appErr := svc.Create(context.Background(), first); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if _, appErr := svc.Create(context.Background(), second); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	result, appErr := svc.List(context.Background(), dto.ListEventsQuery{Search: "sprint"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(result) != 1 || result[0].Title != "Sprint review" {
		t.Errorf("expected only the sprint review, got %v", result)
	}
}

func TestEventService_List_Range(t *testing.T) {
	svc, _ := newTestService()

	inside := createRequest()
	outside := createRequest()
	outside.Title = "Next month"
	outside.StartDate = timePtr(time.Date(2024, time.February, 8, 9, 0, 0, 0, time.UTC))
	outside.EndDate = timePtr(time.Date(2024, time.February, 8, 9, 30, 0, 0, time.UTC))

	if _, appErr := svc.Create(context.Background(), inside); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if _, appErr := svc.Create(context.Background(), outside); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	result, appErr := svc.List(context.Background(), dto.ListEventsQuery{
		Start: timePtr(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		End:   timePtr(time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)),
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(result) != 1 || result[0].Title != "Standup" {
		t.Errorf("expected only the January event, got %d events", len(result))
	}
}
