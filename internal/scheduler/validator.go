package scheduler

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mod756/timetableautomation/pkg/model"
)

// Validate re-checks the finished grids against every scheduling property:
// span integrity, break inviolability, room collisions, elective synchrony,
// lab room distinctness and the days-used caps. Returns false and a report
// for schedules that violate any of them.
func Validate(courses []*model.Course, result *Result, cfg *Configuration) (bool, string) {
	var message string
	valid := true

	fail := func(format string, args ...any) {
		valid = false
		message += fmt.Sprintf("    "+format+"\n", args...)
	}
	check := func(name string, run func()) {
		before := message
		run()
		if len(message) > len(before) {
			message = before + "[FAIL]: " + name + "\n" + message[len(before):]
		} else {
			message += "[  OK]: " + name + "\n"
		}
	}

	check("All sessions placed", func() {
		for _, un := range result.Unplaced {
			fail("%s %s unscheduled for %s sem %d sections %v",
				un.CourseCode, un.Kind, un.Department, un.Semester, un.Sections)
		}
	})

	check("Section grid integrity", func() {
		for _, table := range result.Tables {
			for day, row := range table.Grid {
				for slot := 0; slot < len(row); {
					cell := row[slot]
					switch cell.State {
					case model.CellHead:
						if want := cfg.SessionSlots(cell.Kind); cell.Span != want {
							fail("%s %s %s: span %d, want %d", table.Section, cell.CourseCode, cell.Kind, cell.Span, want)
						}
						for i := 1; i < cell.Span && slot+i < len(row); i++ {
							cont := row[slot+i]
							if cont.State != model.CellContinuation || cont.Kind != cell.Kind {
								fail("%s %s: malformed continuation at day %d slot %d", table.Section, cell.CourseCode, day, slot+i)
							}
							if cont.CourseCode != "" {
								fail("%s: display fields on continuation at day %d slot %d", table.Section, day, slot+i)
							}
						}
						slot += cell.Span
					case model.CellContinuation:
						fail("%s: orphan continuation at day %d slot %d", table.Section, day, slot)
						slot++
					default:
						slot++
					}
				}
			}
		}
	})

	check("Break inviolability", func() {
		for _, table := range result.Tables {
			for day, row := range table.Grid {
				for slot, cell := range row {
					if !result.Slots[slot].Break {
						continue
					}
					if cell.State == model.CellHead || cell.State == model.CellContinuation {
						fail("%s sem %d %s: session in break slot, day %d slot %d",
							table.Department, table.Semester, table.Section, day, slot)
					}
				}
			}
		}
	})

	check("Room collision", func() {
		type unit struct {
			day, slot int
			room      string
		}
		used := make(map[unit]string)
		for _, table := range result.Tables {
			for day, row := range table.Grid {
				for slot, cell := range row {
					if cell.State != model.CellHead {
						continue
					}
					for _, room := range cell.RoomIDs {
						for i := 0; i < cell.Span; i++ {
							key := unit{day, slot + i, room}
							if holder, taken := used[key]; taken {
								fail("room %s double-booked on day %d slot %d by %s and %s",
									room, day, slot+i, holder, cell.CourseCode)
							} else {
								used[key] = cell.CourseCode
							}
						}
					}
				}
			}
		}
	})

	check("Faculty collision", func() {
		type unit struct {
			day, slot int
			faculty   string
		}
		used := make(map[unit]string)
		for _, table := range result.Tables {
			for day, row := range table.Grid {
				for slot, cell := range row {
					if cell.State != model.CellHead {
						continue
					}
					for _, fid := range cell.FacultyIDs {
						for i := 0; i < cell.Span; i++ {
							key := unit{day, slot + i, fid}
							holder, taken := used[key]
							if !taken {
								used[key] = cell.CourseCode
								continue
							}
							// A synchronized elective legitimately shows the
							// same instructor in both bound sections.
							if holder != cell.CourseCode {
								fail("%s double-booked on day %d slot %d by %s and %s",
									fid, day, slot+i, holder, cell.CourseCode)
							}
						}
					}
				}
			}
		}
	})

	check("Elective synchrony", func() {
		combined := lo.Filter(courses, func(c *model.Course, _ int) bool { return c.Combined })
		for _, c := range combined {
			pair := lo.Filter(result.Tables, func(t *model.SectionTimetable, _ int) bool {
				return t.Department == c.Department && t.Semester == c.Semester
			})
			if len(pair) != 2 {
				continue
			}
			a := headPositions(pair[0], c.CourseCode)
			b := headPositions(pair[1], c.CourseCode)
			if len(a) != len(b) {
				fail("%s: section %s has %d sessions, section %s has %d",
					c.CourseCode, pair[0].Section, len(a), pair[1].Section, len(b))
				continue
			}
			for key, cellA := range a {
				cellB, ok := b[key]
				if !ok {
					fail("%s %s: day/slot differ between sections", c.CourseCode, cellA.Kind)
					continue
				}
				if cellA.Faculty != cellB.Faculty {
					fail("%s %s: faculty differ between sections", c.CourseCode, cellA.Kind)
				}
			}
		}
	})

	check("Lab room distinctness", func() {
		for _, table := range result.Tables {
			for _, row := range table.Grid {
				for _, cell := range row {
					if cell.State != model.CellHead || cell.Kind != model.SessionLab {
						continue
					}
					if rooms := cell.RoomIDs; len(rooms) > 1 && rooms[0] == rooms[1] {
						fail("%s %s: lab batches share room %s", table.Section, cell.CourseCode, rooms[0])
					}
				}
			}
		}
	})

	check("Days-used caps", func() {
		for _, table := range result.Tables {
			courseDays := make(map[string]map[int]bool)
			lectureLabDays := make(map[string]map[int]bool)
			for day, row := range table.Grid {
				for _, cell := range row {
					if cell.State != model.CellHead {
						continue
					}
					record(courseDays, cell.CourseCode, day)
					if cell.Kind != model.SessionTutorial {
						record(lectureLabDays, cell.CourseCode, day)
					}
				}
			}
			for code, days := range lectureLabDays {
				if len(days) > cfg.MaxCourseDays {
					fail("%s %s: lecture/lab days %d exceed cap %d", table.Section, code, len(days), cfg.MaxCourseDays)
				}
			}
			for code, days := range courseDays {
				if len(days) > cfg.MaxTutorialDays {
					fail("%s %s: scheduling days %d exceed cap %d", table.Section, code, len(days), cfg.MaxTutorialDays)
				}
			}
		}
	})

	return valid, message
}

type gridPosition struct {
	day, slot int
}

func headPositions(table *model.SectionTimetable, courseCode string) map[gridPosition]model.Cell {
	heads := make(map[gridPosition]model.Cell)
	for day, row := range table.Grid {
		for slot, cell := range row {
			if cell.State == model.CellHead && cell.CourseCode == courseCode {
				heads[gridPosition{day, slot}] = cell
			}
		}
	}
	return heads
}

func record(sets map[string]map[int]bool, code string, day int) {
	if sets[code] == nil {
		sets[code] = make(map[int]bool)
	}
	sets[code][day] = true
}
