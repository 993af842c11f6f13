package schedule

import (
	"strings"
	"time"
)

// Record is one stored availability row as the expander sees it.
type Record struct {
	ID        string
	DoctorID  uint
	FirstName string
	LastName  string
	StartDate time.Time
	EndDate   time.Time
	IsMonthly bool
	Modes     ModeSet
	Slots     []Slot
}

// Event is one bookable calendar instance derived from a record. Events
// are never stored; the identity concatenates record id, date and slot
// start, so repeated reads over unchanged data yield identical ids.
type Event struct {
	ID         string   `json:"id"`
	DoctorID   uint     `json:"doctor_id"`
	DoctorName string   `json:"doctor_name"`
	Title      string   `json:"title"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	AllDay     bool     `json:"allDay"`
	IsMonthly  bool     `json:"isMonthly"`
	Modes      []string `json:"modes"`
	IsLocked   bool     `json:"isLocked"`
}

// Locked reports whether the event start falls inside the 24-hour booking
// lock window, measured in whole hours: an event 23h59m away is locked,
// one exactly 24h away is not.
func Locked(eventStart, now time.Time) bool {
	return int(eventStart.Sub(now).Hours()) < 24
}

// Expand projects every record into concrete events, evaluated against
// now. A non-monthly record emits one event per slot on its start day; a
// monthly record replays each slot on the anchored day-of-month for every
// month through the end month inclusive. An anchor day missing from a
// shorter month clamps to that month's last day. Output order is record,
// then slot, then month.
func Expand(records []Record, now time.Time) []Event {
	events := make([]Event, 0)

	for _, rec := range records {
		name := strings.TrimSpace(rec.FirstName + " " + rec.LastName)
		modes := rec.Modes.Names()

		emit := func(day time.Time, s Slot) {
			events = append(events, Event{
				ID:         rec.ID + FormatDay(day) + s.FromTime,
				DoctorID:   rec.DoctorID,
				DoctorName: name,
				Title:      "Dr. " + name,
				Start:      CombineDateTime(day, s.FromTime),
				End:        CombineDateTime(day, s.ToTime),
				AllDay:     false,
				IsMonthly:  rec.IsMonthly,
				Modes:      modes,
				IsLocked:   Locked(DayAt(day, s.FromTime), now),
			})
		}

		for _, s := range rec.Slots {
			if !rec.IsMonthly {
				emit(rec.StartDate, s)
				continue
			}
			for i := 0; ; i++ {
				day := AddMonthsClamped(rec.StartDate, i)
				if !MonthOnOrBefore(day, rec.EndDate) {
					break
				}
				emit(day, s)
			}
		}
	}
	return events
}
