package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandNonMonthly(t *testing.T) {
	rec := Record{
		ID:        "42",
		DoctorID:  7,
		FirstName: "Asha",
		LastName:  "Menon",
		StartDate: day(2025, time.March, 10),
		EndDate:   day(2025, time.March, 10),
		Slots:     []Slot{{"09:00", "09:30"}},
		Modes:     ModeSet{VideoCall: true},
	}
	now := day(2025, time.January, 1)

	events := Expand([]Record{rec}, now)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "422025-03-1009:00", ev.ID)
	assert.Equal(t, "2025-03-10T09:00", ev.Start)
	assert.Equal(t, "2025-03-10T09:30", ev.End)
	assert.Equal(t, "Asha Menon", ev.DoctorName)
	assert.Equal(t, "Dr. Asha Menon", ev.Title)
	assert.False(t, ev.AllDay)
	assert.False(t, ev.IsMonthly)
	assert.Equal(t, []string{"videoCall"}, ev.Modes)
	assert.False(t, ev.IsLocked)
}

func TestExpandMonthlyAcrossBound(t *testing.T) {
	rec := Record{
		ID:        "9",
		DoctorID:  3,
		StartDate: day(2025, time.January, 15),
		EndDate:   day(2025, time.March, 20),
		IsMonthly: true,
		Slots:     []Slot{{"10:00", "10:30"}},
	}
	now := day(2024, time.December, 1)

	events := Expand([]Record{rec}, now)
	require.Len(t, events, 3, "day 15 anchored through March inclusive")

	assert.Equal(t, "2025-01-15T10:00", events[0].Start)
	assert.Equal(t, "2025-02-15T10:00", events[1].Start)
	assert.Equal(t, "2025-03-15T10:00", events[2].Start)
	for _, ev := range events {
		assert.True(t, ev.IsMonthly)
		assert.Equal(t, "10:30", ev.End[len(ev.End)-5:])
	}
}

func TestExpandMonthlyClampsShortMonths(t *testing.T) {
	rec := Record{
		ID:        "31",
		StartDate: day(2025, time.January, 31),
		EndDate:   day(2025, time.April, 1),
		IsMonthly: true,
		Slots:     []Slot{{"08:00", "08:30"}},
	}

	events := Expand([]Record{rec}, day(2024, time.June, 1))
	require.Len(t, events, 4)
	assert.Equal(t, "2025-01-31T08:00", events[0].Start)
	assert.Equal(t, "2025-02-28T08:00", events[1].Start)
	assert.Equal(t, "2025-03-31T08:00", events[2].Start)
	assert.Equal(t, "2025-04-30T08:00", events[3].Start)
}

func TestLockWindow(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, Locked(now.Add(23*time.Hour), now), "23h away is inside the lock window")
	assert.False(t, Locked(now.Add(25*time.Hour), now), "25h away is outside the lock window")
	assert.False(t, Locked(now.Add(24*time.Hour), now), "exactly 24h away is not locked")
	assert.True(t, Locked(now.Add(23*time.Hour+59*time.Minute), now), "23h59m away is locked")
	assert.True(t, Locked(now.Add(-time.Hour), now), "past events stay locked")
}

func TestExpandLockFlagUsesInjectedClock(t *testing.T) {
	rec := Record{
		ID:        "5",
		StartDate: day(2025, time.March, 10),
		EndDate:   day(2025, time.March, 10),
		Slots:     []Slot{{"09:00", "09:30"}},
	}

	farAway := Expand([]Record{rec}, day(2025, time.January, 1))
	require.Len(t, farAway, 1)
	assert.False(t, farAway[0].IsLocked)

	dayBefore := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)
	nearby := Expand([]Record{rec}, dayBefore)
	require.Len(t, nearby, 1)
	assert.True(t, nearby[0].IsLocked, "21h before start is inside the lock window")
}

func TestExpandIdempotentRead(t *testing.T) {
	records := []Record{
		{
			ID:        "1",
			StartDate: day(2025, time.May, 5),
			EndDate:   day(2025, time.May, 5),
			Slots:     []Slot{{"09:00", "09:30"}, {"10:00", "10:30"}},
		},
		{
			ID:        "2",
			StartDate: day(2025, time.January, 20),
			EndDate:   day(2025, time.June, 1),
			IsMonthly: true,
			Slots:     []Slot{{"14:00", "15:00"}},
		},
	}
	now := day(2025, time.January, 1)

	first := Expand(records, now)
	second := Expand(records, now)
	assert.Equal(t, first, second, "same records and clock yield identical events in identical order")
}

func TestExpandEmptyRecords(t *testing.T) {
	events := Expand(nil, time.Now())
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
