package model

import "fmt"

// Assignment binds one session of a course to an instructor, a room and a time slot. Courses are
// identified by code, instructors and rooms by id.
type Assignment struct {
	Course     Course
	Instructor Instructor
	Room       Room
	Slot       TimeSlot
	IsLab      bool
}

func NewAssignment(course Course, instructor Instructor, room Room, slot TimeSlot, isLab bool) Assignment {
	return Assignment{
		Course:     course,
		Instructor: instructor,
		Room:       room,
		Slot:       slot,
		IsLab:      isLab,
	}
}

func (assignment Assignment) Equal(other Assignment) bool {
	return assignment.IsLab == other.IsLab &&
		assignment.sameCourse(other) &&
		assignment.sameInstructor(other) &&
		assignment.sameRoom(other) &&
		assignment.Slot.Equal(other.Slot)
}

// ConflictsWith checks whether both assignments happen at overlapping times while sharing a room, an
// instructor or a course
func (assignment Assignment) ConflictsWith(other Assignment) bool {
	if !assignment.Slot.Overlaps(other.Slot) {
		return false
	}
	return assignment.sameRoom(other) || assignment.sameInstructor(other) || assignment.sameCourse(other)
}

func (assignment Assignment) SessionKind() string {
	if assignment.IsLab {
		return "lab"
	}
	return "lecture"
}

func (assignment Assignment) String() string {
	return fmt.Sprintf("%v - %v - %v - %v", assignment.Course.Code, assignment.Instructor.Name, assignment.Room.Id, assignment.Slot)
}

func (assignment Assignment) sameCourse(other Assignment) bool {
	return assignment.Course.Code == other.Course.Code
}

func (assignment Assignment) sameInstructor(other Assignment) bool {
	return assignment.Instructor.Id == other.Instructor.Id
}

func (assignment Assignment) sameRoom(other Assignment) bool {
	return assignment.Room.Id == other.Room.Id
}
