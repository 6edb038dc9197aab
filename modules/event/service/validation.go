package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go-calendar-api/core/constants"
	"go-calendar-api/modules/event/entity"
)

var colorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violated constraint of one event, so
// a caller sees the full list rather than the first failure.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// ValidateEvent checks the full event document. It runs at creation and
// against the merged document on partial updates, so a one-sided change
// (e.g. moving endDate before an unchanged startDate) is caught.
//
// The date ordering check fails closed: a missing start or end date is
// itself a violation, never a reason to skip the comparison.
func ValidateEvent(e *entity.Event) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Event title is required"})
	} else if utf8.RuneCountInString(e.Title) > constants.TitleMaxLength {
		errs = append(errs, FieldError{
			Field:   "title",
			Message: fmt.Sprintf("Title cannot exceed %d characters", constants.TitleMaxLength),
		})
	}

	if e.Description != nil && utf8.RuneCountInString(*e.Description) > constants.DescriptionMaxLength {
		errs = append(errs, FieldError{
			Field:   "description",
			Message: fmt.Sprintf("Description cannot exceed %d characters", constants.DescriptionMaxLength),
		})
	}

	if e.Location != nil && utf8.RuneCountInString(*e.Location) > constants.LocationMaxLength {
		errs = append(errs, FieldError{
			Field:   "location",
			Message: fmt.Sprintf("Location cannot exceed %d characters", constants.LocationMaxLength),
		})
	}

	startMissing := e.StartDate.IsZero()
	endMissing := e.EndDate.IsZero()
	if startMissing {
		errs = append(errs, FieldError{Field: "startDate", Message: "Start date is required"})
	}
	if endMissing {
		errs = append(errs, FieldError{Field: "endDate", Message: "End date is required"})
	}
	if !startMissing && !endMissing && e.EndDate.Before(e.StartDate) {
		errs = append(errs, FieldError{Field: "endDate", Message: "End date must be after start date"})
	}

	if !colorPattern.MatchString(e.Color) {
		errs = append(errs, FieldError{Field: "color", Message: "Invalid color format"})
	}

	errs = append(errs, validateRecurrence(e.Recurring)...)

	return errs
}

func validateRecurrence(r entity.Recurrence) ValidationErrors {
	if r.IsZero() {
		return nil
	}

	var errs ValidationErrors

	switch r.Frequency {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly:
	default:
		errs = append(errs, FieldError{
			Field:   "recurring.frequency",
			Message: "Frequency must be one of daily, weekly, monthly",
		})
	}

	if r.Interval < 1 {
		errs = append(errs, FieldError{
			Field:   "recurring.interval",
			Message: "Interval must be at least 1",
		})
	}

	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			errs = append(errs, FieldError{
				Field:   "recurring.daysOfWeek",
				Message: "Days of week must be between 0 and 6",
			})
			break
		}
	}

	return errs
}
