package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"

	"github.com/mod756/timetableautomation/pkg/model"
)

var validate = validator.New()

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
}

// LoadCourses reads and parses the course definition file. Raw session
// counts and the faculty id list are resolved here so the engine only ever
// sees validated numeric fields; blank counts coerce to zero.
func LoadCourses(path string, delim rune) ([]*model.Course, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open courses file: %w", err)
	}
	defer f.Close()

	var courses []*model.Course
	if err := gocsv.UnmarshalFile(f, &courses); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, c := range courses {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("invalid course record %q: %w", c.CourseID, err)
		}
		c.FacultyIDs = splitIDs(c.FacultySTR)
		if c.Lectures, err = parseCount(c.LectureSTR); err != nil {
			return nil, fmt.Errorf("course %s: lecture count: %w", c.CourseID, err)
		}
		if c.Tutorials, err = parseCount(c.TutorialSTR); err != nil {
			return nil, fmt.Errorf("course %s: tutorial count: %w", c.CourseID, err)
		}
		if c.Labs, err = parseCount(c.LabSTR); err != nil {
			return nil, fmt.Errorf("course %s: lab count: %w", c.CourseID, err)
		}
	}
	return courses, nil
}

// LoadRooms reads and parses the room pool file.
func LoadRooms(path string, delim rune) ([]*model.Room, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rooms file: %w", err)
	}
	defer f.Close()

	var rooms []*model.Room
	if err := gocsv.UnmarshalFile(f, &rooms); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, r := range rooms {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("invalid room record %q: %w", r.ID, err)
		}
	}
	return rooms, nil
}

// LoadElectives reads the elective roster file and builds the faculty
// id to display-name directory from it.
func LoadElectives(path string, delim rune) (model.FacultyDirectory, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open electives file: %w", err)
	}
	defer f.Close()

	var rosters []*model.ElectiveRoster
	if err := gocsv.UnmarshalFile(f, &rosters); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, r := range rosters {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("invalid elective record %q: %w", r.CourseCode, err)
		}
	}
	return model.BuildFacultyDirectory(rosters), nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ";") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
