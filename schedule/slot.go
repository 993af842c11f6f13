package schedule

import "regexp"

// Slot is a single fromTime/toTime interval in 24-hour HH:mm format.
type Slot struct {
	FromTime string `json:"fromTime"`
	ToTime   string `json:"toTime"`
}

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidHHMM reports whether s is a zero-padded 24-hour HH:mm string.
func ValidHHMM(s string) bool {
	return hhmmPattern.MatchString(s)
}

// Valid reports whether both endpoints are well formed and the interval is
// not inverted or empty. Endpoints are fixed-width zero-padded, so plain
// string comparison orders them correctly.
func (s Slot) Valid() bool {
	return ValidHHMM(s.FromTime) && ValidHHMM(s.ToTime) && s.FromTime < s.ToTime
}

// Overlaps reports whether the two intervals intersect. Touching endpoints
// do not overlap: 09:00-10:00 and 10:00-11:00 can coexist on one day.
func (s Slot) Overlaps(other Slot) bool {
	return s.FromTime < other.ToTime && s.ToTime > other.FromTime
}

// ModeSet marks the consultation channels offered for a slot set.
type ModeSet struct {
	Audio     bool `json:"audio"`
	Chat      bool `json:"chat"`
	VideoCall bool `json:"videoCall"`
}

// Names returns the enabled mode names in a fixed order.
func (m ModeSet) Names() []string {
	names := make([]string, 0, 3)
	if m.Audio {
		names = append(names, "audio")
	}
	if m.Chat {
		names = append(names, "chat")
	}
	if m.VideoCall {
		names = append(names, "videoCall")
	}
	return names
}
