package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecurrenceFrequency values accepted by the recurrence sub-schema.
type RecurrenceFrequency string

const (
	FrequencyDaily   RecurrenceFrequency = "daily"
	FrequencyWeekly  RecurrenceFrequency = "weekly"
	FrequencyMonthly RecurrenceFrequency = "monthly"
)

// Recurrence is descriptive metadata on an event. It is stored and
// validated but never expanded into concrete occurrences: a recurring
// event behaves as a single event in every view.
type Recurrence struct {
	Enabled    bool                `json:"enabled"`
	Frequency  RecurrenceFrequency `json:"frequency"`
	Interval   int                 `json:"interval"`
	EndDate    *time.Time          `json:"endDate,omitempty"`
	DaysOfWeek []int               `json:"daysOfWeek,omitempty"`
}

// IsZero reports whether no recurrence metadata was supplied. The zero
// value maps to a NULL column.
func (r Recurrence) IsZero() bool {
	return !r.Enabled && r.Frequency == "" && r.Interval == 0 &&
		r.EndDate == nil && len(r.DaysOfWeek) == 0
}

// Value stores the recurrence as JSONB, NULL when absent.
func (r Recurrence) Value() (driver.Value, error) {
	if r.IsZero() {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan reads the JSONB column, tolerating NULL.
func (r *Recurrence) Scan(src any) error {
	if src == nil {
		*r = Recurrence{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into Recurrence", src)
	}
}

// Event is the calendar aggregate: a titled time interval with optional
// location, description, color and recurrence metadata.
type Event struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	StartDate   time.Time  `db:"start_date" json:"startDate"`
	EndDate     time.Time  `db:"end_date" json:"endDate"`
	Location    *string    `db:"location" json:"location,omitempty"`
	Color       string     `db:"color" json:"color"`
	IsAllDay    bool       `db:"is_all_day" json:"isAllDay"`
	Recurring   Recurrence `db:"recurring" json:"recurring"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
