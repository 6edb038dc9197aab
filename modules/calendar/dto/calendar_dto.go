package dto

import (
	"time"

	eventdto "go-calendar-api/modules/event/dto"
)

// DayCell is one cell of the month grid.
type DayCell struct {
	Date    time.Time                `json:"date"`
	InMonth bool                     `json:"inMonth"`
	IsToday bool                     `json:"isToday"`
	Events  []eventdto.EventResponse `json:"events"`
}

// PositionedEvent carries an event's vertical placement within a
// 24-hour day column, as percentages.
type PositionedEvent struct {
	Event  eventdto.EventResponse `json:"event"`
	Top    float64                `json:"top"`
	Height float64                `json:"height"`
}

// DayColumn is one column of the week or day view.
type DayColumn struct {
	Date    time.Time         `json:"date"`
	IsToday bool              `json:"isToday"`
	Events  []PositionedEvent `json:"events"`
}

// AgendaGroup is one day's worth of events in the agenda view.
type AgendaGroup struct {
	Date   time.Time                `json:"date"`
	Label  string                   `json:"label"`
	Events []eventdto.EventResponse `json:"events"`
}

// CalendarViewResponse is the render-ready structure for a view
// selection plus reference date. Exactly one of Days, Columns or Agenda
// is populated depending on the view.
type CalendarViewResponse struct {
	View          string        `json:"view"`
	ReferenceDate time.Time     `json:"referenceDate"`
	Days          []DayCell     `json:"days,omitempty"`
	Hours         []int         `json:"hours,omitempty"`
	Columns       []DayColumn   `json:"columns,omitempty"`
	Agenda        []AgendaGroup `json:"agenda,omitempty"`
}
