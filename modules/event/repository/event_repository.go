package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/event/entity"
)

const eventColumns = `id, title, description, start_date, end_date, location, color, is_all_day, recurring, created_at, updated_at`

// EventRepository handles event database operations.
type EventRepository struct {
	DB database.IDatabase
}

// NewEventRepository creates a new repository instance.
func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract.
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, start, end *time.Time, search string) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (title, description, start_date, end_date, location, color, is_all_day, recurring)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Location, event.Color, event.IsAllDay, event.Recurring)

	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}

	return &event, nil
}

// List returns events ordered by start date. When both start and end
// are given, only events whose interval intersects [start, end] are
// returned; search narrows by full-text match over title+description.
func (r *EventRepository) List(ctx context.Context, start, end *time.Time, search string) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`

	var conditions []string
	var args []any

	if start != nil && end != nil {
		args = append(args, *start, *end)
		conditions = append(conditions, fmt.Sprintf(`(
			(start_date >= $%d AND start_date <= $%d) OR
			(end_date >= $%d AND end_date <= $%d) OR
			(start_date <= $%d AND end_date >= $%d)
		)`, 1, 2, 1, 2, 1, 2))
	}

	if search != "" {
		args = append(args, search)
		conditions = append(conditions, fmt.Sprintf(
			`to_tsvector('english', title || ' ' || coalesce(description, '')) @@ plainto_tsquery('english', $%d)`,
			len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_date ASC"

	events := make([]entity.Event, 0)
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:List", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		UPDATE events
		SET title = $2, description = $3, start_date = $4, end_date = $5,
		    location = $6, color = $7, is_all_day = $8, recurring = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + eventColumns

	var updated entity.Event
	err := r.DB.GetContext(ctx, &updated, query,
		event.ID, event.Title, event.Description, event.StartDate, event.EndDate,
		event.Location, event.Color, event.IsAllDay, event.Recurring)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:Update", err)
		return nil, err
	}

	return &updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventRepository:Delete", err)
		return err
	}
	return nil
}
