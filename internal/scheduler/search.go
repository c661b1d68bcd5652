package scheduler

import (
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mod756/timetableautomation/pkg/model"
)

// sessionRequest describes one required session instance. Normal courses
// target a single section timetable; a synchronized elective targets the
// bound pair so both receive the identical day, slot and faculty.
type sessionRequest struct {
	course   *model.Course
	kind     model.SessionKind
	duration int
	capacity int // per-room seating requirement
	lab      bool
	maxDays  int
	targets  []*model.SectionTimetable
}

// schedule runs the placement search and records the shortfall when the
// retry budget runs out. Unplaceable sessions never abort the run.
func (s *Scheduler) schedule(req sessionRequest) {
	if s.place(req) {
		return
	}
	sections := lo.Map(req.targets, func(t *model.SectionTimetable, _ int) string {
		return t.Section
	})
	s.unplaced = append(s.unplaced, model.UnplacedSession{
		Department: req.course.Department,
		Semester:   req.course.Semester,
		Sections:   sections,
		CourseCode: req.course.CourseCode,
		Kind:       req.kind,
	})
	s.logger.Warn("session left unscheduled after exhausting attempts",
		zap.String("course", req.course.CourseCode),
		zap.String("kind", string(req.kind)),
		zap.Strings("sections", sections),
		zap.Int("attempts", s.cfg.MaxAttempts))
}

// place samples (day, startSlot) pairs until every check passes or the
// budget is spent. A failed attempt discards all work for that attempt; no
// resource is marked occupied unless the entire session is placed.
func (s *Scheduler) place(req sessionRequest) bool {
	maxStart := len(s.slots) - req.duration
	if maxStart < 0 {
		return false
	}
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		day := s.rng.Intn(len(s.cfg.Days))
		startSlot := s.rng.Intn(maxStart + 1)

		if s.dayCapReached(req, day) {
			continue
		}
		if !s.spanOpen(req, day, startSlot) {
			continue
		}
		rooms := s.acquireRooms(req, day, startSlot)
		if rooms == nil {
			continue
		}
		if !s.facultyFree(req.course.FacultyIDs, day, startSlot, req.duration) {
			continue
		}
		s.commit(req, day, startSlot, rooms)
		return true
	}
	return false
}

// dayCapReached rejects a day that would push any target section past the
// course's days-used cap. Cheap, so it runs before any resource lookup.
func (s *Scheduler) dayCapReached(req sessionRequest, day int) bool {
	for _, t := range req.targets {
		if t.UsedDayCount(req.course.CourseID) >= req.maxDays && !t.UsedOn(req.course.CourseID, day) {
			return true
		}
	}
	return false
}

// spanOpen checks the span against break windows and every target grid.
func (s *Scheduler) spanOpen(req sessionRequest, day, startSlot int) bool {
	for i := 0; i < req.duration; i++ {
		if s.slots[startSlot+i].Break {
			return false
		}
	}
	for _, t := range req.targets {
		if !t.SpanFree(day, startSlot, req.duration) {
			return false
		}
	}
	return true
}

// acquireRooms selects the session's rooms without committing anything.
// Labs need LabBatchCount distinct rooms; other sessions need one per
// target section, also distinct. Nil means this attempt fails.
func (s *Scheduler) acquireRooms(req sessionRequest, day, startSlot int) []*model.Room {
	count := len(req.targets)
	if req.lab {
		count = s.cfg.LabBatchCount
	}
	rooms := make([]*model.Room, 0, count)
	taken := make([]string, 0, count)
	for i := 0; i < count; i++ {
		r := s.selector.pick(req.capacity, req.lab, day, startSlot, req.duration, taken...)
		if r == nil {
			return nil
		}
		rooms = append(rooms, r)
		taken = append(taken, r.ID)
	}
	return rooms
}

func (s *Scheduler) facultyFree(facultyIDs []string, day, startSlot, duration int) bool {
	for _, fid := range facultyIDs {
		if !s.facultyLedger.IsFree(fid, day, startSlot, duration) {
			return false
		}
	}
	return true
}

// commit performs the all-or-nothing write: grid cells for every target,
// ledger entries for every room and faculty member, and the used day.
func (s *Scheduler) commit(req sessionRequest, day, startSlot int, rooms []*model.Room) {
	labels := lo.Map(rooms, func(r *model.Room, _ int) string { return r.Label })
	ids := lo.Map(rooms, func(r *model.Room, _ int) string { return r.ID })
	for i, t := range req.targets {
		label, roomIDs := strings.Join(labels, "/"), ids
		if len(rooms) == len(req.targets) {
			label, roomIDs = labels[i], ids[i:i+1]
		}
		t.Place(day, startSlot, model.Cell{
			Kind:       req.kind,
			CourseCode: req.course.CourseCode,
			CourseName: req.course.CourseName,
			Faculty:    s.faculty.DisplayName(req.course.FacultyIDs),
			Room:       label,
			Span:       req.duration,
			FacultyIDs: req.course.FacultyIDs,
			RoomIDs:    roomIDs,
		})
		t.RecordDay(req.course.CourseID, day)
	}
	for _, r := range rooms {
		s.roomLedger.Commit(r.ID, day, startSlot, req.duration)
	}
	for _, fid := range req.course.FacultyIDs {
		s.facultyLedger.Commit(fid, day, startSlot, req.duration)
	}
	s.logger.Debug("placed session",
		zap.String("course", req.course.CourseCode),
		zap.String("kind", string(req.kind)),
		zap.String("day", s.cfg.Days[day]),
		zap.String("time", model.FormatClock(s.slots[startSlot].Start)),
		zap.Strings("rooms", labels))
}
