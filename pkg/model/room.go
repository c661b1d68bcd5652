package model

type RoomType string

const (
	RoomTypeLecture     RoomType = "LECTURE_ROOM"
	RoomTypeSeater120   RoomType = "SEATER_120"
	RoomTypeSeater240   RoomType = "SEATER_240"
	RoomTypeComputerLab RoomType = "COMPUTER_LAB"
	RoomTypeHardwareLab RoomType = "HARDWARE_LAB"
)

// Room is one entry of the static room pool shared by every department.
type Room struct {
	ID       string   `csv:"id" validate:"required"`
	Label    string   `csv:"room no" validate:"required"`
	Capacity int      `csv:"capacity" validate:"gt=0"`
	Type     RoomType `csv:"room type" validate:"required,oneof=LECTURE_ROOM SEATER_120 SEATER_240 COMPUTER_LAB HARDWARE_LAB"`
}

// IsLab reports whether the room can host lab sessions. Lecture and tutorial
// sessions require a non-lab room.
func (r *Room) IsLab() bool {
	return r.Type == RoomTypeComputerLab || r.Type == RoomTypeHardwareLab
}

// MaxRoomCapacity returns the largest capacity in the pool. Cohorts above it
// are split into two sections.
func MaxRoomCapacity(rooms []*Room) int {
	max := 0
	for _, r := range rooms {
		if r.Capacity > max {
			max = r.Capacity
		}
	}
	return max
}
