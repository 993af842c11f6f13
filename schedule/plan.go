package schedule

import (
	"fmt"
	"time"
)

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the field errors for a rejected write request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request"
	}
	return fmt.Sprintf("%s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

// WriteRequest is the inbound payload for saving availability. Name fields
// are honored only for admin callers, which may address a doctor by name.
type WriteRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	TimeSlots []Slot  `json:"timeSlots"`
	IsMonthly bool    `json:"isMonthly"`
	Modes     ModeSet `json:"modes"`
}

// Validate checks the request shape and returns the parsed day range.
// endDate is required only for monthly requests; a non-monthly request
// covers just startDate. Runs before any database access.
func (r WriteRequest) Validate() (start, end time.Time, err error) {
	var fields []FieldError

	start, perr := ParseDay(r.StartDate)
	if perr != nil {
		fields = append(fields, FieldError{Field: "startDate", Message: "must be a valid YYYY-MM-DD date"})
	}

	end = start
	if r.IsMonthly {
		e, eerr := ParseDay(r.EndDate)
		switch {
		case eerr != nil:
			fields = append(fields, FieldError{Field: "endDate", Message: "must be a valid YYYY-MM-DD date"})
		case perr == nil && e.Before(start):
			fields = append(fields, FieldError{Field: "endDate", Message: "must not precede startDate"})
		default:
			end = e
		}
	}

	if len(r.TimeSlots) == 0 {
		fields = append(fields, FieldError{Field: "timeSlots", Message: "at least one slot is required"})
	}

	if len(fields) > 0 {
		return time.Time{}, time.Time{}, &ValidationError{Fields: fields}
	}
	return start, end, nil
}

// Conflict records one rejected day+slot pair.
type Conflict struct {
	Date string `json:"date"`
	Slot Slot   `json:"slot"`
}

// DayPlan lists the slots accepted for one calendar day.
type DayPlan struct {
	Day   time.Time
	Slots []Slot
}

// ConflictChecker reports whether stored availability already overlaps the
// candidate slot on the given day.
type ConflictChecker func(day time.Time, candidate Slot) (bool, error)

// PlanResult is the outcome of planning one write request.
type PlanResult struct {
	Days      []DayPlan
	Conflicts []Conflict
	Dropped   int
}

// PlanDays walks every calendar day from start to end inclusive and checks
// each well-formed candidate slot against already stored availability.
// Malformed or inverted slots are dropped silently, not counted as
// conflicts. A conflicting slot never displaces the stored one: the first
// writer wins per slot interval.
//
// The check runs read-then-write with no locking, so two concurrent
// requests for the same doctor, day and interval can both pass and both
// insert. Known limitation inherited from the reference behavior.
func PlanDays(start, end time.Time, candidates []Slot, check ConflictChecker) (PlanResult, error) {
	var res PlanResult

	valid := make([]Slot, 0, len(candidates))
	for _, s := range candidates {
		if s.Valid() {
			valid = append(valid, s)
		} else {
			res.Dropped++
		}
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		accepted := make([]Slot, 0, len(valid))
		for _, s := range valid {
			conflict, err := check(day, s)
			if err != nil {
				return res, err
			}
			if conflict {
				res.Conflicts = append(res.Conflicts, Conflict{Date: FormatDay(day), Slot: s})
				continue
			}
			accepted = append(accepted, s)
		}
		if len(accepted) > 0 {
			res.Days = append(res.Days, DayPlan{Day: day, Slots: accepted})
		}
	}
	return res, nil
}
