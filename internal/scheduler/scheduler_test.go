package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mod756/timetableautomation/pkg/model"
)

func testFaculty() model.FacultyDirectory {
	return model.FacultyDirectory{"F1": "A. Rao", "F2": "B. Iyer", "F3": "C. Das"}
}

func newTestScheduler(rooms []*model.Room, seed int64) *Scheduler {
	return New(NewDefaultConfiguration(), rooms, testFaculty(),
		WithRand(rand.New(rand.NewSource(seed))))
}

func testCourse(id, code string, capacity, l, tut, p int, combined bool, faculty ...string) *model.Course {
	return &model.Course{
		Department: "CSE",
		Semester:   2,
		CourseID:   id,
		CourseCode: code,
		CourseName: code + " name",
		Capacity:   capacity,
		Lectures:   l,
		Tutorials:  tut,
		Labs:       p,
		Combined:   combined,
		FacultyIDs: faculty,
	}
}

func headsByKind(table *model.SectionTimetable, code string) map[model.SessionKind][]model.Cell {
	found := make(map[model.SessionKind][]model.Cell)
	for _, row := range table.Grid {
		for _, cell := range row {
			if cell.State == model.CellHead && cell.CourseCode == code {
				found[cell.Kind] = append(found[cell.Kind], cell)
			}
		}
	}
	return found
}

func TestGenerateSingleCourse(t *testing.T) {
	courses := []*model.Course{testCourse("C1", "CS201", 40, 1, 1, 1, false, "F1")}
	s := newTestScheduler(testRooms(), 42)
	result := s.Generate(courses)

	require.Len(t, result.Tables, 1)
	require.Empty(t, result.Unplaced)

	found := headsByKind(result.Tables[0], "CS201")
	require.Len(t, found[model.SessionLecture], 1)
	require.Len(t, found[model.SessionTutorial], 1)
	require.Len(t, found[model.SessionLab], 1)

	assert.Equal(t, 3, found[model.SessionLecture][0].Span)
	assert.Equal(t, 2, found[model.SessionTutorial][0].Span)
	assert.Equal(t, 4, found[model.SessionLab][0].Span)
	assert.Equal(t, "A. Rao", found[model.SessionLecture][0].Faculty)

	labRooms := found[model.SessionLab][0].RoomIDs
	require.Len(t, labRooms, 2, "labs use one room per batch")
	assert.NotEqual(t, labRooms[0], labRooms[1])
	assert.Contains(t, found[model.SessionLab][0].Room, "/")

	valid, report := Validate(courses, result, s.cfg)
	assert.True(t, valid, report)
}

func TestGenerateCohortPropertiesHold(t *testing.T) {
	courses := []*model.Course{
		testCourse("C1", "CS201", 60, 2, 1, 0, false, "F1"),
		testCourse("C2", "CS202", 40, 2, 0, 1, false, "F2"),
		testCourse("C3", "CS203", 30, 1, 1, 0, false, "F3"),
	}
	s := newTestScheduler(testRooms(), 11)
	result := s.Generate(courses)

	require.Empty(t, result.Unplaced)
	valid, report := Validate(courses, result, s.cfg)
	assert.True(t, valid, report)
}

func TestLargeCourseWithoutLargeRoomIsReported(t *testing.T) {
	rooms := []*model.Room{
		{ID: "R1", Label: "C001", Capacity: 60, Type: model.RoomTypeLecture},
		{ID: "LBIG", Label: "LAB9", Capacity: 240, Type: model.RoomTypeComputerLab},
	}
	courses := []*model.Course{testCourse("C1", "CS301", 80, 2, 0, 0, false, "F1")}
	s := newTestScheduler(rooms, 3)
	result := s.Generate(courses)

	require.Len(t, result.Unplaced, 2)
	for _, un := range result.Unplaced {
		assert.Equal(t, "CS301", un.CourseCode)
		assert.Equal(t, model.SessionLecture, un.Kind)
	}

	// No partial or malformed entries may exist for an abandoned course.
	require.Len(t, result.Tables, 1)
	assert.Empty(t, headsByKind(result.Tables[0], "CS301"))
	for day := range s.cfg.Days {
		assert.Zero(t, s.roomLedger.OccupiedCount("R1", day))
		assert.Zero(t, s.roomLedger.OccupiedCount("LBIG", day))
		assert.Zero(t, s.facultyLedger.OccupiedCount("F1", day))
	}
}

func TestLabWithSingleLabRoomLeavesNoPartialState(t *testing.T) {
	rooms := []*model.Room{
		{ID: "R2", Label: "C002", Capacity: 120, Type: model.RoomTypeSeater120},
		{ID: "L1", Label: "LAB1", Capacity: 40, Type: model.RoomTypeComputerLab},
	}
	courses := []*model.Course{testCourse("C1", "CS210", 40, 0, 0, 1, false, "F1")}
	s := newTestScheduler(rooms, 5)
	result := s.Generate(courses)

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, model.SessionLab, result.Unplaced[0].Kind)
	for day := range s.cfg.Days {
		assert.Zero(t, s.roomLedger.OccupiedCount("L1", day), "no reservation may survive a failed attempt")
		assert.Zero(t, s.facultyLedger.OccupiedCount("F1", day))
	}
}

func TestElectiveSynchrony(t *testing.T) {
	// Capacity 300 exceeds the largest room, so the cohort splits into two
	// sections bound by the shared elective basket.
	courses := []*model.Course{
		testCourse("E1", "OE401", 300, 1, 0, 0, true, "F1"),
		testCourse("E2", "OE401", 300, 1, 0, 0, true, "F2"),
	}
	s := newTestScheduler(testRooms(), 9)
	result := s.Generate(courses)

	require.Len(t, result.Tables, 2)
	require.Empty(t, result.Unplaced)

	a := headsByKind(result.Tables[0], "OE401")[model.SessionLecture]
	b := headsByKind(result.Tables[1], "OE401")[model.SessionLecture]
	require.Len(t, a, 1, "basket multiplicity collapses to one synchronized lecture")
	require.Len(t, b, 1)

	posA := headPositions(result.Tables[0], "OE401")
	posB := headPositions(result.Tables[1], "OE401")
	require.Equal(t, len(posA), len(posB))
	for pos := range posA {
		_, ok := posB[pos]
		assert.True(t, ok, "sections must share day and start slot")
	}

	assert.Equal(t, a[0].Faculty, b[0].Faculty)
	assert.NotEqual(t, a[0].Room, b[0].Room, "rooms are selected per section")

	// The shared instructor is booked once, not once per section.
	total := 0
	for day := range s.cfg.Days {
		total += s.facultyLedger.OccupiedCount("F1", day)
	}
	assert.Equal(t, s.cfg.LectureSlots, total)

	valid, report := Validate(courses, result, s.cfg)
	assert.True(t, valid, report)
}

func TestElectiveSessionsSynchronizeAcrossKinds(t *testing.T) {
	// The elective capacity halves to 150, so its lab batches need the
	// large room tier too.
	rooms := append(testRooms(),
		&model.Room{ID: "L3", Label: "LAB3", Capacity: 240, Type: model.RoomTypeComputerLab},
		&model.Room{ID: "L4", Label: "LAB4", Capacity: 240, Type: model.RoomTypeHardwareLab},
	)
	courses := []*model.Course{
		testCourse("E1", "OE401", 300, 1, 1, 1, true, "F1"),
		testCourse("E2", "OE401", 300, 1, 1, 1, true, "F2"),
	}
	s := newTestScheduler(rooms, 13)
	result := s.Generate(courses)

	require.Len(t, result.Tables, 2)
	require.Empty(t, result.Unplaced)

	a, b := result.Tables[0], result.Tables[1]
	for _, kind := range []model.SessionKind{model.SessionLecture, model.SessionTutorial, model.SessionLab} {
		headsA := headsByKind(a, "OE401")[kind]
		headsB := headsByKind(b, "OE401")[kind]
		require.Len(t, headsA, 1, string(kind))
		require.Len(t, headsB, 1, string(kind))
		assert.Equal(t, headsA[0].Faculty, headsB[0].Faculty, string(kind))
		assert.NotEqual(t, headsA[0].RoomIDs, headsB[0].RoomIDs, string(kind))
	}

	posA := headPositions(a, "OE401")
	posB := headPositions(b, "OE401")
	require.Len(t, posA, 3)
	for pos := range posA {
		_, ok := posB[pos]
		assert.True(t, ok, "every session kind must share day and start slot")
	}

	valid, report := Validate(courses, result, s.cfg)
	assert.True(t, valid, report)
}

func TestLectureDaysStayWithinCap(t *testing.T) {
	courses := []*model.Course{testCourse("C1", "CS220", 40, 3, 0, 0, false, "F1")}
	s := newTestScheduler(testRooms(), 21)
	result := s.Generate(courses)

	require.Empty(t, result.Unplaced)
	days := make(map[int]bool)
	for day, row := range result.Tables[0].Grid {
		for _, cell := range row {
			if cell.State == model.CellHead && cell.CourseCode == "CS220" {
				days[day] = true
			}
		}
	}
	assert.LessOrEqual(t, len(days), s.cfg.MaxCourseDays)
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	courses := func() []*model.Course {
		return []*model.Course{
			testCourse("C1", "CS201", 60, 2, 1, 0, false, "F1"),
			testCourse("C2", "CS202", 40, 1, 0, 1, false, "F2"),
		}
	}
	first := newTestScheduler(testRooms(), 77).Generate(courses())
	second := newTestScheduler(testRooms(), 77).Generate(courses())
	assert.Equal(t, first.Tables, second.Tables)
}
