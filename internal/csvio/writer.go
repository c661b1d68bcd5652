package csvio

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/mod756/timetableautomation/internal/scheduler"
	"github.com/mod756/timetableautomation/pkg/model"
)

// TimetableCSVRow is one committed session in the flat export format.
// Continuation cells are folded into the head row's duration.
type TimetableCSVRow struct {
	Department string `csv:"department"`
	Semester   int    `csv:"semester"`
	Section    string `csv:"section"`
	Day        string `csv:"day"`
	Time       string `csv:"time"`
	Duration   int    `csv:"duration"`
	Kind       string `csv:"kind"`
	CourseCode string `csv:"course_code"`
	CourseName string `csv:"course_name"`
	Faculty    string `csv:"faculty"`
	Room       string `csv:"room"`
}

// ExportTimetables writes every section grid to a single CSV file.
func ExportTimetables(result *scheduler.Result, path string) error {
	rows := formatResult(result)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportTimetablesString renders the same rows to a CSV string.
func ExportTimetablesString(result *scheduler.Result) (string, error) {
	rows := formatResult(result)
	return gocsv.MarshalString(&rows)
}

// PrintUnplaced writes the shortfall report to stdout.
func PrintUnplaced(unplaced []model.UnplacedSession) {
	if len(unplaced) == 0 {
		fmt.Println("All session requirements were placed.")
		return
	}
	fmt.Printf("%d session(s) could not be placed:\n", len(unplaced))
	for _, un := range unplaced {
		fmt.Printf("    %s sem %d sections %s: %s %s\n",
			un.Department, un.Semester, strings.Join(un.Sections, ","), un.CourseCode, un.Kind)
	}
}

func formatResult(result *scheduler.Result) []*TimetableCSVRow {
	var rows []*TimetableCSVRow
	for _, table := range result.Tables {
		for day, gridRow := range table.Grid {
			for slot, cell := range gridRow {
				if cell.State != model.CellHead {
					continue
				}
				rows = append(rows, &TimetableCSVRow{
					Department: table.Department,
					Semester:   table.Semester,
					Section:    table.Section,
					Day:        result.Days[day],
					Time:       model.FormatClock(result.Slots[slot].Start),
					Duration:   cell.Span,
					Kind:       string(cell.Kind),
					CourseCode: cell.CourseCode,
					CourseName: cell.CourseName,
					Faculty:    cell.Faculty,
					Room:       cell.Room,
				})
			}
		}
	}
	dayOrder := make(map[string]int, len(result.Days))
	for i, name := range result.Days {
		dayOrder[name] = i
	}
	slices.SortFunc(rows, func(a, b *TimetableCSVRow) int {
		if dep := strings.Compare(a.Department, b.Department); dep != 0 {
			return dep
		}
		if sem := a.Semester - b.Semester; sem != 0 {
			return sem
		}
		if sec := strings.Compare(a.Section, b.Section); sec != 0 {
			return sec
		}
		if day := dayOrder[a.Day] - dayOrder[b.Day]; day != 0 {
			return day
		}
		return strings.Compare(a.Time, b.Time)
	})
	return rows
}
