package csvio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mod756/timetableautomation/internal/scheduler"
	"github.com/mod756/timetableautomation/pkg/model"
)

var kindFills = map[model.SessionKind]string{
	model.SessionLecture:  "E6E6FA",
	model.SessionLab:      "98FB98",
	model.SessionTutorial: "FFE4E1",
}

const (
	headerFill = "FFD700"
	breakFill  = "D3D3D3"
)

// ExportWorkbook renders one worksheet per section grid: a header row of
// slot time ranges, one row per day, session spans merged into a single
// block, break columns greyed out.
func ExportWorkbook(result *scheduler.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return err
	}

	for _, table := range result.Tables {
		name := fmt.Sprintf("%s_%d_%s", table.Department, table.Semester, table.Section)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, table, result, styles); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

type workbookStyles struct {
	header int
	cell   int
	brk    int
	kinds  map[model.SessionKind]int
}

func newWorkbookStyles(f *excelize.File) (*workbookStyles, error) {
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	cell, err := f.NewStyle(&excelize.Style{Alignment: center, Border: border})
	if err != nil {
		return nil, err
	}
	brk, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{breakFill}, Pattern: 1},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	styles := &workbookStyles{header: header, cell: cell, brk: brk, kinds: make(map[model.SessionKind]int)}
	for kind, color := range kindFills {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: center,
			Border:    border,
		})
		if err != nil {
			return nil, err
		}
		styles.kinds[kind] = id
	}
	return styles, nil
}

func writeSheet(f *excelize.File, sheet string, table *model.SectionTimetable, result *scheduler.Result, styles *workbookStyles) error {
	if err := f.SetCellValue(sheet, "A1", "Day"); err != nil {
		return err
	}
	for i, slot := range result.Slots {
		name, _ := excelize.CoordinatesToCellName(i+2, 1)
		if err := f.SetCellValue(sheet, name, slot.Label()); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(result.Slots)+1, 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, styles.header); err != nil {
		return err
	}

	for day, gridRow := range table.Grid {
		rowNum := day + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), result.Days[day]); err != nil {
			return err
		}
		for slot, cell := range gridRow {
			name, _ := excelize.CoordinatesToCellName(slot+2, rowNum)
			style := styles.cell
			switch cell.State {
			case model.CellBreak:
				style = styles.brk
				if err := f.SetCellValue(sheet, name, "BREAK"); err != nil {
					return err
				}
			case model.CellHead:
				style = styles.kinds[cell.Kind]
				value := fmt.Sprintf("%s %s\n%s", cell.CourseCode, cell.Kind, cell.Room)
				if err := f.SetCellValue(sheet, name, value); err != nil {
					return err
				}
				end, _ := excelize.CoordinatesToCellName(slot+1+cell.Span, rowNum)
				if err := f.MergeCell(sheet, name, end); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, name, end, style); err != nil {
					return err
				}
				continue
			case model.CellContinuation:
				continue // covered by the head cell's merge
			}
			if err := f.SetCellStyle(sheet, name, name, style); err != nil {
				return err
			}
		}
		if err := f.SetRowHeight(sheet, rowNum, 40); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(result.Slots) + 1)
	return f.SetColWidth(sheet, "A", lastCol, 15)
}
