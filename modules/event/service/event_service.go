package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-calendar-api/core/cache"
	"go-calendar-api/core/constants"
	"go-calendar-api/core/errors"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/entity"
	"go-calendar-api/modules/event/repository"
)

const listCacheTTL = 5 * time.Minute

// TaskQueue enqueues background work after event writes. Implemented by
// the asynq client wrapper; nil disables enqueueing.
type TaskQueue interface {
	EnqueueCacheWarm(ref time.Time) error
}

// EventService handles event business logic.
type EventService struct {
	repo  repository.EventRepositoryInterface
	cache *cache.Cache
	queue TaskQueue
}

// EventServiceInterface defines the service contract.
type EventServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	List(ctx context.Context, q dto.ListEventsQuery) ([]dto.EventResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewEventService creates a new event service. Cache and queue may be
// nil; both are best-effort collaborators.
func NewEventService(repo repository.EventRepositoryInterface, c *cache.Cache, queue TaskQueue) EventServiceInterface {
	return &EventService{
		repo:  repo,
		cache: c,
		queue: queue,
	}
}

// Create validates and persists a new event.
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event := &entity.Event{
		Title:     strings.TrimSpace(req.Title),
		Color:     strings.TrimSpace(req.Color),
		IsAllDay:  req.IsAllDay,
		Recurring: dto.ToRecurrence(req.Recurring),
	}

	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		event.Description = &desc
	}
	if loc := strings.TrimSpace(req.Location); loc != "" {
		event.Location = &loc
	}
	if event.Color == "" {
		event.Color = constants.DefaultEventColor
	}

	if verrs := ValidateEvent(event); len(verrs) > 0 {
		return nil, errors.NewAppErrorWithDetails(errors.ErrValidation, verrs.Error(), verrs, nil)
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	s.afterWrite(ctx, created.StartDate)
	return dto.ToEventResponse(created), nil
}

// GetByID retrieves an event by ID.
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return dto.ToEventResponse(event), nil
}

// List returns events matching the query, served from cache when a
// fresh entry exists.
func (s *EventService) List(ctx context.Context, q dto.ListEventsQuery) ([]dto.EventResponse, *errors.AppError) {
	var key string
	if s.cache != nil {
		key = cache.RangeKey(s.cache.Version(ctx), q.Start, q.End, q.Search)

		var cached []dto.EventResponse
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx, q.Start, q.End, q.Search)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}

	result := dto.ToEventResponses(events)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, result, listCacheTTL); err != nil {
			logger.Warn("EventService:List cache set failed", "error", err)
		}
	}

	return result, nil
}

// Update applies a partial field set onto the stored event and
// re-validates the merged document before persisting.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	mergeUpdate(event, req)

	if verrs := ValidateEvent(event); len(verrs) > 0 {
		return nil, errors.NewAppErrorWithDetails(errors.ErrValidation, verrs.Error(), verrs, nil)
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	s.afterWrite(ctx, updated.StartDate)
	return dto.ToEventResponse(updated), nil
}

// Delete removes an event by ID.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	s.afterWrite(ctx, event.StartDate)
	return nil
}

func mergeUpdate(event *entity.Event, req *dto.UpdateEventRequest) {
	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if desc := strings.TrimSpace(*req.Description); desc != "" {
			event.Description = &desc
		} else {
			event.Description = nil
		}
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Location != nil {
		if loc := strings.TrimSpace(*req.Location); loc != "" {
			event.Location = &loc
		} else {
			event.Location = nil
		}
	}
	if req.Color != nil {
		event.Color = strings.TrimSpace(*req.Color)
	}
	if req.IsAllDay != nil {
		event.IsAllDay = *req.IsAllDay
	}
	if req.Recurring != nil {
		event.Recurring = dto.ToRecurrence(req.Recurring)
	}
}

// afterWrite invalidates the list cache and schedules a cache warm for
// the written event's month. Failures are logged, never surfaced.
func (s *EventService) afterWrite(ctx context.Context, ref time.Time) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.queue != nil {
		if err := s.queue.EnqueueCacheWarm(ref); err != nil {
			logger.Warn("EventService:afterWrite enqueue failed", "error", err)
		}
	}
}
