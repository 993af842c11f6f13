package schedule

import "time"

const (
	dayFormat    = "2006-01-02"
	minuteFormat = "15:04"
)

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayFormat, s)
}

// FormatDay renders a calendar day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayFormat)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped moves t forward by the given number of calendar months,
// keeping the day-of-month where it exists and clamping to the last valid
// day otherwise: Jan 31 plus one month lands on Feb 28 (29 in leap years),
// never on Mar 2.
func AddMonthsClamped(t time.Time, months int) time.Time {
	day := t.Day()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if max := daysIn(first.Year(), first.Month()); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// MonthOnOrBefore reports whether a's year/month is not after b's. Loop
// bounds on recurring records are inclusive at month granularity; the
// day-of-month on the bound itself is irrelevant.
func MonthOnOrBefore(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.Month() <= b.Month()
}

// CombineDateTime joins a calendar day and an HH:mm string into the
// YYYY-MM-DDTHH:mm form used for calendar events.
func CombineDateTime(day time.Time, hhmm string) string {
	return day.Format(dayFormat) + "T" + hhmm
}

// DayAt returns the instant at hhmm on the given calendar day. The time
// string must already be validated.
func DayAt(day time.Time, hhmm string) time.Time {
	t, _ := time.Parse(minuteFormat, hhmm)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}
