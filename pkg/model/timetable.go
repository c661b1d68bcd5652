package model

type SessionKind string

const (
	SessionLecture  SessionKind = "LEC"
	SessionTutorial SessionKind = "TUT"
	SessionLab      SessionKind = "LAB"
)

// CellState tags what a grid cell holds. Multi-slot sessions put their
// display fields on the head cell only; continuation cells let a renderer
// detect and merge the span.
type CellState int

const (
	CellEmpty CellState = iota
	CellBreak
	CellHead
	CellContinuation
)

type Cell struct {
	State CellState
	Kind  SessionKind // set on head and continuation cells

	// Display fields, head cells only.
	CourseCode string
	CourseName string
	Faculty    string
	Room       string
	Span       int // slots covered by the session

	// Structured ids backing the display strings, head cells only.
	// Consumers that reason about resources read these, never the
	// formatted strings.
	FacultyIDs []string
	RoomIDs    []string
}

// SectionTimetable is the weekly grid of one (department, semester, section)
// plus per-course days-used bookkeeping.
type SectionTimetable struct {
	Department string
	Semester   int
	Section    string
	Grid       [][]Cell // [day][slot]

	courseDays map[string]map[int]struct{}
}

// NewSectionTimetable allocates an empty grid. Break slots are pre-marked so
// occupancy checks reject them without consulting the slot list again.
func NewSectionTimetable(department string, semester int, section string, days int, slots []TimeSlot) *SectionTimetable {
	t := &SectionTimetable{
		Department: department,
		Semester:   semester,
		Section:    section,
		Grid:       make([][]Cell, days),
		courseDays: make(map[string]map[int]struct{}),
	}
	for d := range t.Grid {
		t.Grid[d] = make([]Cell, len(slots))
		for i, slot := range slots {
			if slot.Break {
				t.Grid[d][i] = Cell{State: CellBreak}
			}
		}
	}
	return t
}

// SpanFree reports whether every cell in [startSlot, startSlot+duration) on
// the given day is empty. Break cells count as occupied.
func (t *SectionTimetable) SpanFree(day, startSlot, duration int) bool {
	if day < 0 || day >= len(t.Grid) || startSlot < 0 || startSlot+duration > len(t.Grid[day]) {
		return false
	}
	for i := 0; i < duration; i++ {
		if t.Grid[day][startSlot+i].State != CellEmpty {
			return false
		}
	}
	return true
}

// Place writes a session into the grid: the head cell at startSlot, bare
// continuations after it. Cells are first-writer-wins; callers must have
// verified SpanFree before committing.
func (t *SectionTimetable) Place(day, startSlot int, head Cell) {
	head.State = CellHead
	t.Grid[day][startSlot] = head
	for i := 1; i < head.Span; i++ {
		t.Grid[day][startSlot+i] = Cell{State: CellContinuation, Kind: head.Kind}
	}
}

// RecordDay adds a day to the course's used-days set.
func (t *SectionTimetable) RecordDay(courseID string, day int) {
	days, ok := t.courseDays[courseID]
	if !ok {
		days = make(map[int]struct{})
		t.courseDays[courseID] = days
	}
	days[day] = struct{}{}
}

// UsedDayCount returns how many distinct days the course already occupies.
func (t *SectionTimetable) UsedDayCount(courseID string) int {
	return len(t.courseDays[courseID])
}

// UsedOn reports whether the course already occupies the given day.
func (t *SectionTimetable) UsedOn(courseID string, day int) bool {
	_, ok := t.courseDays[courseID][day]
	return ok
}

// UnplacedSession identifies a required session instance that the search
// abandoned after exhausting its retry budget.
type UnplacedSession struct {
	Department string
	Semester   int
	Sections   []string
	CourseCode string
	Kind       SessionKind
}
