package scheduler

import "github.com/mod756/timetableautomation/pkg/model"

// Configuration names every scheduling policy knob. The search logic reads
// these fields instead of literals so policy changes stay out of the
// algorithm.
type Configuration struct {
	Days         []string
	DayStart     int // minutes since midnight
	DayEnd       int
	SlotDuration int // minutes
	Breaks       []model.BreakWindow

	LectureSlots  int
	TutorialSlots int
	LabSlots      int

	MaxAttempts       int // retry budget per session instance
	LargeCourseCutoff int // capacity at/above which only the large tier qualifies
	LargeRoomCapacity int // minimum capacity of the large tier
	LabBatchCount     int // capacity divisor and room count for lab sessions
	MaxCourseDays     int // days-used cap for lectures and labs
	MaxTutorialDays   int // days-used cap for tutorials
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		Days:         []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		DayStart:     9 * 60,
		DayEnd:       18*60 + 30,
		SlotDuration: 30,
		Breaks: []model.BreakWindow{
			{Start: 10*60 + 30, End: 11 * 60}, // morning
			{Start: 13 * 60, End: 14 * 60},    // lunch
			{Start: 16*60 + 30, End: 17 * 60}, // afternoon
		},
		LectureSlots:      3,
		TutorialSlots:     2,
		LabSlots:          4,
		MaxAttempts:       15000,
		LargeCourseCutoff: 75,
		LargeRoomCapacity: 120,
		LabBatchCount:     2,
		MaxCourseDays:     2,
		MaxTutorialDays:   3,
	}
}

// SessionSlots returns the fixed slot span of a session kind.
func (c *Configuration) SessionSlots(kind model.SessionKind) int {
	switch kind {
	case model.SessionLecture:
		return c.LectureSlots
	case model.SessionTutorial:
		return c.TutorialSlots
	case model.SessionLab:
		return c.LabSlots
	}
	return 0
}

// MaxDays returns the days-used cap that applies to a session kind.
func (c *Configuration) MaxDays(kind model.SessionKind) int {
	if kind == model.SessionTutorial {
		return c.MaxTutorialDays
	}
	return c.MaxCourseDays
}

// TimeSlots generates the day's slot sequence from the configured window.
func (c *Configuration) TimeSlots() []model.TimeSlot {
	return model.GenerateTimeSlots(c.DayStart, c.DayEnd, c.SlotDuration, c.Breaks)
}
