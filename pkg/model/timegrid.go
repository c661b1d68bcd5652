package model

import "fmt"

// BreakWindow is a half-open [Start, End) interval in minutes since midnight.
type BreakWindow struct {
	Start int
	End   int
}

// TimeSlot is one schedulable unit of the day. Start and End are minutes
// since midnight, End exclusive. Break slots are never assignable.
type TimeSlot struct {
	Index int
	Start int
	End   int
	Break bool
}

// Label formats the slot as "09:00-09:30".
func (s TimeSlot) Label() string {
	return FormatClock(s.Start) + "-" + FormatClock(s.End)
}

// GenerateTimeSlots enumerates slots from dayStart until the next slot would
// end past dayEnd. Slots whose start falls inside a break window are tagged.
func GenerateTimeSlots(dayStart, dayEnd, granularity int, breaks []BreakWindow) []TimeSlot {
	var slots []TimeSlot
	for start := dayStart; start+granularity <= dayEnd; start += granularity {
		slots = append(slots, TimeSlot{
			Index: len(slots),
			Start: start,
			End:   start + granularity,
			Break: inBreak(start, breaks),
		})
	}
	return slots
}

func inBreak(start int, breaks []BreakWindow) bool {
	for _, b := range breaks {
		if b.Start <= start && start < b.End {
			return true
		}
	}
	return false
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
