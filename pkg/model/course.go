package model

// Course is one row of the course definition input. The *STR fields hold raw
// CSV values; csvio resolves them into the derived fields before the engine
// runs (blank session counts coerce to zero at that boundary).
type Course struct {
	Department  string `csv:"DEPARTMENT" validate:"required"`
	Semester    int    `csv:"SEMESTER" validate:"gt=0"`
	CourseID    string `csv:"COURSE_ID" validate:"required"`
	CourseCode  string `csv:"COURSE_CODE" validate:"required"`
	CourseName  string `csv:"COURSE_NAME" validate:"required"`
	FacultySTR  string `csv:"FACULTY_ID"`
	Capacity    int    `csv:"CAPACITY" validate:"gt=0"`
	LectureSTR  string `csv:"L"`
	TutorialSTR string `csv:"T"`
	LabSTR      string `csv:"P"`
	Combined    bool   `csv:"COMBINED"`

	FacultyIDs []string `csv:"-"`
	Lectures   int      `csv:"-"`
	Tutorials  int      `csv:"-"`
	Labs       int      `csv:"-"`
}
