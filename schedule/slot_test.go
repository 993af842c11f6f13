package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotValid(t *testing.T) {
	cases := []struct {
		name string
		slot Slot
		want bool
	}{
		{name: "morning slot", slot: Slot{"09:00", "10:00"}, want: true},
		{name: "one minute", slot: Slot{"23:58", "23:59"}, want: true},
		{name: "inverted", slot: Slot{"10:00", "09:00"}, want: false},
		{name: "empty interval", slot: Slot{"09:00", "09:00"}, want: false},
		{name: "bad hour", slot: Slot{"25:00", "26:00"}, want: false},
		{name: "bad minute", slot: Slot{"09:61", "10:00"}, want: false},
		{name: "not zero padded", slot: Slot{"9:00", "10:00"}, want: false},
		{name: "garbage", slot: Slot{"morning", "noon"}, want: false},
		{name: "missing to", slot: Slot{FromTime: "09:00"}, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.slot.Valid())
		})
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	slots := []Slot{
		{"09:00", "10:00"},
		{"09:30", "10:30"},
		{"10:00", "11:00"},
		{"08:00", "12:00"},
		{"11:30", "11:45"},
	}

	for _, a := range slots {
		for _, b := range slots {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "overlaps(%v,%v) must be symmetric", a, b)
		}
		assert.True(t, a.Overlaps(a), "a non-degenerate interval overlaps itself")
	}
}

func TestTouchingIntervalsDoNotOverlap(t *testing.T) {
	first := Slot{"09:00", "10:00"}
	second := Slot{"10:00", "11:00"}

	assert.False(t, first.Overlaps(second))
	assert.False(t, second.Overlaps(first))
}

func TestOverlappingIntervals(t *testing.T) {
	first := Slot{"09:00", "10:00"}
	second := Slot{"09:30", "10:30"}

	assert.True(t, first.Overlaps(second))

	contained := Slot{"09:15", "09:45"}
	assert.True(t, first.Overlaps(contained))
	assert.True(t, contained.Overlaps(first))
}

func TestModeSetNames(t *testing.T) {
	assert.Equal(t, []string{"audio", "chat", "videoCall"}, ModeSet{true, true, true}.Names())
	assert.Equal(t, []string{"chat"}, ModeSet{Chat: true}.Names())
	assert.Empty(t, ModeSet{}.Names())
}
