package service

import (
	"sort"
	"time"

	"go-calendar-api/modules/event/entity"
)

// EventsOnDay filters events to those whose [StartDate, EndDate]
// interval intersects the given calendar day, boundary-inclusive on
// both ends. A zero-duration event matches the single day containing
// its instant. Input order is preserved.
func EventsOnDay(events []entity.Event, day time.Time) []entity.Event {
	dayStart := StartOfDay(day)
	dayEnd := EndOfDay(day)

	result := make([]entity.Event, 0)
	for _, e := range events {
		if overlapsDay(e.StartDate, e.EndDate, dayStart, dayEnd) {
			result = append(result, e)
		}
	}
	return result
}

// overlapsDay accepts any of: event starts within the day, event ends
// within the day, event spans the entire day.
func overlapsDay(start, end, dayStart, dayEnd time.Time) bool {
	startsInDay := !start.Before(dayStart) && !start.After(dayEnd)
	endsInDay := !end.Before(dayStart) && !end.After(dayEnd)
	spansDay := !start.After(dayStart) && !end.Before(dayEnd)
	return startsInDay || endsInDay || spansDay
}

// SortByStart returns a new slice sorted ascending by start time. The
// sort is stable: events with equal start times keep their input order.
// The input slice is not mutated.
func SortByStart(events []entity.Event) []entity.Event {
	sorted := append([]entity.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return sorted
}

// PositionInDay maps an event onto a 24-hour day column, returning top
// and height as percentages in [0, 100]. The event interval is clipped
// to the day's bounds and each clipped bound converted to a fractional
// hour of day.
//
// The event must overlap the given day; pre-filter with EventsOnDay.
// Calling this with an event outside the day is a caller error and
// yields meaningless output, including negative heights.
func PositionInDay(e entity.Event, day time.Time) (top, height float64) {
	dayStart := StartOfDay(day)
	dayEnd := EndOfDay(day)

	effStart := e.StartDate
	if effStart.Before(dayStart) {
		effStart = dayStart
	}
	effEnd := e.EndDate
	if effEnd.After(dayEnd) {
		effEnd = dayEnd
	}

	startHour := float64(effStart.Hour()) + float64(effStart.Minute())/60
	endHour := float64(effEnd.Hour()) + float64(effEnd.Minute())/60

	top = startHour / 24 * 100
	height = (endHour - startHour) / 24 * 100
	return top, height
}
