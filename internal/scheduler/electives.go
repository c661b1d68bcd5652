package scheduler

import (
	"github.com/samber/lo"

	"github.com/mod756/timetableautomation/pkg/model"
)

// scheduleElectives places the cohort's combined courses. Courses sharing a
// course code form one basket; each basket is scheduled exactly once
// against every section of its split cohort at the same time, so both
// sections end up with the identical day, slot and faculty. Rooms are
// selected per section and stay distinct. Elective tutorials synchronize
// across the pair the same way lectures and labs do.
func (s *Scheduler) scheduleElectives(courses []*model.Course, sections map[string][]string, tables map[string]*model.SectionTimetable) {
	combined := lo.Filter(courses, func(c *model.Course, _ int) bool { return c.Combined })
	baskets := lo.UniqBy(combined, func(c *model.Course) string { return c.CourseCode })
	for _, c := range baskets {
		names := sections[c.CourseID]
		targets := lo.Map(names, func(name string, _ int) *model.SectionTimetable { return tables[name] })
		for i := 0; i < c.Lectures; i++ {
			s.schedule(sessionRequest{
				course:   c,
				kind:     model.SessionLecture,
				duration: s.cfg.LectureSlots,
				capacity: c.Capacity / len(targets),
				maxDays:  s.cfg.MaxCourseDays,
				targets:  targets,
			})
		}
		for i := 0; i < c.Tutorials; i++ {
			s.schedule(sessionRequest{
				course:   c,
				kind:     model.SessionTutorial,
				duration: s.cfg.TutorialSlots,
				capacity: c.Capacity / len(targets),
				maxDays:  s.cfg.MaxTutorialDays,
				targets:  targets,
			})
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
	}
}
