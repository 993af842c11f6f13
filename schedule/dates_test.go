package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{name: "plain increment", start: day(2025, time.January, 15), months: 1, want: day(2025, time.February, 15)},
		{name: "two months keeps anchor", start: day(2025, time.January, 15), months: 2, want: day(2025, time.March, 15)},
		{name: "clamps into february", start: day(2025, time.January, 31), months: 1, want: day(2025, time.February, 28)},
		{name: "leap february", start: day(2024, time.January, 31), months: 1, want: day(2024, time.February, 29)},
		{name: "anchor survives past short month", start: day(2025, time.January, 31), months: 2, want: day(2025, time.March, 31)},
		{name: "day 31 into 30 day month", start: day(2025, time.March, 31), months: 1, want: day(2025, time.April, 30)},
		{name: "year rollover", start: day(2025, time.November, 20), months: 2, want: day(2026, time.January, 20)},
		{name: "zero months", start: day(2025, time.June, 10), months: 0, want: day(2025, time.June, 10)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, AddMonthsClamped(c.start, c.months))
		})
	}
}

func TestMonthOnOrBefore(t *testing.T) {
	assert.True(t, MonthOnOrBefore(day(2025, time.March, 31), day(2025, time.March, 1)))
	assert.True(t, MonthOnOrBefore(day(2025, time.February, 1), day(2025, time.March, 1)))
	assert.True(t, MonthOnOrBefore(day(2024, time.December, 31), day(2025, time.January, 1)))
	assert.False(t, MonthOnOrBefore(day(2025, time.April, 1), day(2025, time.March, 31)))
	assert.False(t, MonthOnOrBefore(day(2026, time.January, 1), day(2025, time.December, 31)))
}

func TestCombineDateTime(t *testing.T) {
	assert.Equal(t, "2025-03-10T09:00", CombineDateTime(day(2025, time.March, 10), "09:00"))
}

func TestDayAt(t *testing.T) {
	at := DayAt(day(2025, time.March, 10), "14:30")
	assert.Equal(t, time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC), at)
}

func TestParseDay(t *testing.T) {
	parsed, err := ParseDay("2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, day(2025, time.March, 10), parsed)

	_, err = ParseDay("10-03-2025")
	assert.Error(t, err)
}
