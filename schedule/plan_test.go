package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storedChecker mimics the persisted availability lookup with an in-memory
// map of day -> stored slots.
func storedChecker(stored map[string][]Slot) ConflictChecker {
	return func(d time.Time, candidate Slot) (bool, error) {
		for _, s := range stored[FormatDay(d)] {
			if s.Overlaps(candidate) {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestValidateRejectsEndBeforeStart(t *testing.T) {
	req := WriteRequest{
		StartDate: "2025-03-20",
		EndDate:   "2025-03-10",
		IsMonthly: true,
		TimeSlots: []Slot{{"09:00", "10:00"}},
	}

	_, _, err := req.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "endDate", verr.Fields[0].Field)
}

func TestValidateRequiresEndDateOnlyWhenMonthly(t *testing.T) {
	req := WriteRequest{
		StartDate: "2025-03-10",
		TimeSlots: []Slot{{"09:00", "10:00"}},
	}

	start, end, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, start, end, "a non-monthly request covers a single day")

	req.IsMonthly = true
	_, _, err = req.Validate()
	assert.Error(t, err, "monthly requests need a valid endDate")
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	req := WriteRequest{StartDate: "not-a-date", IsMonthly: true}

	_, _, err := req.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"startDate", "endDate", "timeSlots"}, fields)
}

func TestPlanDaysAcceptsTouchingSlots(t *testing.T) {
	d := day(2025, time.March, 10)
	stored := map[string][]Slot{"2025-03-10": {{"09:00", "10:00"}}}

	res, err := PlanDays(d, d, []Slot{{"10:00", "11:00"}}, storedChecker(stored))
	require.NoError(t, err)
	require.Len(t, res.Days, 1)
	assert.Equal(t, []Slot{{"10:00", "11:00"}}, res.Days[0].Slots)
	assert.Empty(t, res.Conflicts)
}

func TestPlanDaysReportsOverlapConflict(t *testing.T) {
	d := day(2025, time.March, 10)
	stored := map[string][]Slot{"2025-03-10": {{"09:00", "10:00"}}}

	res, err := PlanDays(d, d, []Slot{{"09:30", "10:30"}}, storedChecker(stored))
	require.NoError(t, err)
	assert.Empty(t, res.Days, "a conflicting slot must not be persisted")
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "2025-03-10", res.Conflicts[0].Date)
	assert.Equal(t, Slot{"09:30", "10:30"}, res.Conflicts[0].Slot)
}

func TestPlanDaysDropsMalformedSlots(t *testing.T) {
	d := day(2025, time.March, 10)

	res, err := PlanDays(d, d, []Slot{
		{"10:00", "09:00"},
		{"late", "later"},
		{"09:00", "09:30"},
	}, storedChecker(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Dropped)
	assert.Empty(t, res.Conflicts, "dropped slots are not conflicts")
	require.Len(t, res.Days, 1)
	assert.Equal(t, []Slot{{"09:00", "09:30"}}, res.Days[0].Slots)
}

func TestPlanDaysWalksRangeInclusive(t *testing.T) {
	start := day(2025, time.March, 10)
	end := day(2025, time.March, 12)
	stored := map[string][]Slot{"2025-03-11": {{"09:00", "12:00"}}}

	res, err := PlanDays(start, end, []Slot{{"09:00", "09:30"}}, storedChecker(stored))
	require.NoError(t, err)
	require.Len(t, res.Days, 2)
	assert.Equal(t, start, res.Days[0].Day)
	assert.Equal(t, end, res.Days[1].Day)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "2025-03-11", res.Conflicts[0].Date)
}

func TestPlanDaysSurfacesCheckerError(t *testing.T) {
	d := day(2025, time.March, 10)
	boom := errors.New("connection reset")

	_, err := PlanDays(d, d, []Slot{{"09:00", "09:30"}}, func(time.Time, Slot) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}
