package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mod756/timetableautomation/pkg/model"
)

// Scheduler owns the shared state of one engine run: the room pool, the two
// occupancy ledgers and the slot grid. It is built once per run and driven
// single-threaded; a failed attempt never leaves partial reservations.
type Scheduler struct {
	cfg           *Configuration
	rooms         []*model.Room
	faculty       model.FacultyDirectory
	slots         []model.TimeSlot
	roomLedger    *model.Ledger
	facultyLedger *model.Ledger
	selector      *roomSelector
	rng           *rand.Rand
	logger        *zap.Logger
	maxRoomCap    int
	unplaced      []model.UnplacedSession
}

type Option func(*Scheduler)

// WithLogger replaces the default nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// WithRand replaces the default time-seeded source. Tests inject a fixed
// seed to make runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scheduler) { s.rng = rng }
}

func New(cfg *Configuration, rooms []*model.Room, faculty model.FacultyDirectory, opts ...Option) *Scheduler {
	s := &Scheduler{
		cfg:           cfg,
		rooms:         rooms,
		faculty:       faculty,
		slots:         cfg.TimeSlots(),
		roomLedger:    model.NewLedger(len(cfg.Days)),
		facultyLedger: model.NewLedger(len(cfg.Days)),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:        zap.NewNop(),
		maxRoomCap:    model.MaxRoomCapacity(rooms),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.selector = &roomSelector{cfg: cfg, rooms: rooms, ledger: s.roomLedger, rng: s.rng}
	return s
}

// Result is the engine's output: one grid per (department, semester,
// section) plus the sessions the search had to abandon.
type Result struct {
	Days     []string
	Slots    []model.TimeSlot
	Tables   []*model.SectionTimetable
	Unplaced []model.UnplacedSession
}

// Generate schedules every required session instance. Departments and
// semesters are processed in input order; within each cohort, synchronized
// electives go first, then core courses with labs before lectures before
// tutorials, so the most constrained sessions see the emptiest grid.
func (s *Scheduler) Generate(courses []*model.Course) *Result {
	var tables []*model.SectionTimetable
	departments := lo.Uniq(lo.Map(courses, func(c *model.Course, _ int) string { return c.Department }))
	for _, department := range departments {
		inDept := lo.Filter(courses, func(c *model.Course, _ int) bool { return c.Department == department })
		semesters := lo.Uniq(lo.Map(inDept, func(c *model.Course, _ int) int { return c.Semester }))
		for _, semester := range semesters {
			cohort := lo.Filter(inDept, func(c *model.Course, _ int) bool { return c.Semester == semester })
			tables = append(tables, s.generateCohort(department, semester, cohort)...)
		}
	}
	return &Result{
		Days:     s.cfg.Days,
		Slots:    s.slots,
		Tables:   tables,
		Unplaced: s.unplaced,
	}
}

// generateCohort splits the cohort into sections, builds their empty grids
// and schedules the cohort's courses into them.
func (s *Scheduler) generateCohort(department string, semester int, courses []*model.Course) []*model.SectionTimetable {
	sections := make(map[string][]string, len(courses))
	for _, c := range courses {
		if c.Capacity > s.maxRoomCap {
			sections[c.CourseID] = []string{"A", "B"}
		} else {
			sections[c.CourseID] = []string{"A"}
		}
	}
	names := lo.Uniq(lo.Flatten(lo.Values(sections)))
	sort.Strings(names)

	tables := make(map[string]*model.SectionTimetable, len(names))
	for _, name := range names {
		tables[name] = model.NewSectionTimetable(department, semester, name, len(s.cfg.Days), s.slots)
	}

	s.scheduleElectives(courses, sections, tables)
	s.scheduleCore(courses, sections, tables, names)

	return lo.Map(names, func(name string, _ int) *model.SectionTimetable { return tables[name] })
}

// scheduleCore places the cohort's independent courses one section at a
// time. Tutorial capacity is split across the course's sections, lab
// capacity across its batches.
func (s *Scheduler) scheduleCore(courses []*model.Course, sections map[string][]string, tables map[string]*model.SectionTimetable, names []string) {
	core := lo.Filter(courses, func(c *model.Course, _ int) bool { return !c.Combined })
	for _, name := range names {
		targets := []*model.SectionTimetable{tables[name]}
		for _, c := range core {
			if !lo.Contains(sections[c.CourseID], name) {
				continue
			}
			if c.Labs > 0 {
				s.schedule(sessionRequest{
					course:   c,
					kind:     model.SessionLab,
					duration: s.cfg.LabSlots,
					capacity: c.Capacity / s.cfg.LabBatchCount,
					lab:      true,
					maxDays:  s.cfg.MaxCourseDays,
					targets:  targets,
				})
			}
			for i := 0; i < c.Lectures; i++ {
				s.schedule(sessionRequest{
					course:   c,
					kind:     model.SessionLecture,
					duration: s.cfg.LectureSlots,
					capacity: c.Capacity,
					maxDays:  s.cfg.MaxCourseDays,
					targets:  targets,
				})
			}
			for i := 0; i < c.Tutorials; i++ {
				s.schedule(sessionRequest{
					course:   c,
					kind:     model.SessionTutorial,
					duration: s.cfg.TutorialSlots,
					capacity: c.Capacity / len(sections[c.CourseID]),
					maxDays:  s.cfg.MaxTutorialDays,
					targets:  targets,
				})
			}
		}
	}
}
