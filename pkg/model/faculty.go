package model

import "strings"

// ElectiveRoster is one row of the elective definition input. The faculty
// columns carry parallel semicolon-delimited id and name lists.
type ElectiveRoster struct {
	CourseCode     string `csv:"course_code" validate:"required"`
	FacultyIDSTR   string `csv:"faculty_id" validate:"required"`
	FacultyNameSTR string `csv:"faculty_name" validate:"required"`
}

// FacultyDirectory resolves faculty ids to display names.
type FacultyDirectory map[string]string

// BuildFacultyDirectory zips the id and name lists of every roster row into
// a single lookup table.
func BuildFacultyDirectory(rosters []*ElectiveRoster) FacultyDirectory {
	dir := make(FacultyDirectory)
	for _, row := range rosters {
		ids := strings.Split(row.FacultyIDSTR, ";")
		names := strings.Split(row.FacultyNameSTR, ";")
		for i, id := range ids {
			if i >= len(names) {
				break
			}
			dir[strings.TrimSpace(id)] = strings.TrimSpace(names[i])
		}
	}
	return dir
}

// DisplayName joins the resolved names of the given ids. Unknown ids fall
// back to "Faculty_<id>".
func (d FacultyDirectory) DisplayName(ids []string) string {
	if len(ids) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := d[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, "Faculty_"+id)
		}
	}
	return strings.Join(names, ", ")
}
