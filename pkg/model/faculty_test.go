package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacultyDirectory(t *testing.T) {
	dir := BuildFacultyDirectory([]*ElectiveRoster{
		{CourseCode: "OE1", FacultyIDSTR: "F1;F2", FacultyNameSTR: "A. Rao; B. Iyer"},
		{CourseCode: "OE2", FacultyIDSTR: "F3", FacultyNameSTR: "C. Das"},
	})

	assert.Equal(t, "A. Rao", dir["F1"])
	assert.Equal(t, "B. Iyer", dir["F2"])
	assert.Equal(t, "A. Rao, B. Iyer", dir.DisplayName([]string{"F1", "F2"}))
	assert.Equal(t, "Faculty_F9", dir.DisplayName([]string{"F9"}))
	assert.Equal(t, "Unknown", dir.DisplayName(nil))
}

func TestMaxRoomCapacity(t *testing.T) {
	rooms := []*Room{
		{ID: "R1", Capacity: 60},
		{ID: "R2", Capacity: 240},
		{ID: "R3", Capacity: 120},
	}
	assert.Equal(t, 240, MaxRoomCapacity(rooms))
	assert.Zero(t, MaxRoomCapacity(nil))
}
