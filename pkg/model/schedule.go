package model

import (
	"slices"

	"github.com/samber/lo"
)

// Schedule is a named timetable. No two of its entries ever conflict: every insertion goes through
// AddEntry, which refuses conflicting assignments.
type Schedule struct {
	Name    string
	entries []Assignment
}

func NewSchedule(name string) *Schedule {
	return &Schedule{
		Name:    name,
		entries: make([]Assignment, 0),
	}
}

// AddEntry appends the assignment unless it conflicts with an existing entry, in which case the schedule
// is left untouched and false is returned
func (schedule *Schedule) AddEntry(assignment Assignment) bool {
	if lo.SomeBy(schedule.entries, assignment.ConflictsWith) {
		return false
	}
	schedule.entries = append(schedule.entries, assignment)
	return true
}

// RemoveEntry deletes the first entry structurally equal to the assignment
func (schedule *Schedule) RemoveEntry(assignment Assignment) bool {
	index := slices.IndexFunc(schedule.entries, assignment.Equal)
	if index < 0 {
		return false
	}
	schedule.entries = slices.Delete(schedule.entries, index, index+1)
	return true
}

func (schedule *Schedule) Entries() []Assignment {
	return slices.Clone(schedule.entries)
}

func (schedule *Schedule) Len() int {
	return len(schedule.entries)
}

func (schedule *Schedule) Contains(assignment Assignment) bool {
	return slices.ContainsFunc(schedule.entries, assignment.Equal)
}

func (schedule *Schedule) EntriesForCourse(courseCode string) []Assignment {
	return lo.Filter(schedule.entries, func(entry Assignment, _ int) bool {
		return entry.Course.Code == courseCode
	})
}

func (schedule *Schedule) EntriesForInstructor(instructorId string) []Assignment {
	return lo.Filter(schedule.entries, func(entry Assignment, _ int) bool {
		return entry.Instructor.Id == instructorId
	})
}

func (schedule *Schedule) EntriesForRoom(roomId string) []Assignment {
	return lo.Filter(schedule.entries, func(entry Assignment, _ int) bool {
		return entry.Room.Id == roomId
	})
}

// Clone returns an independent copy, so accepted suggestions can be edited without being mutated
func (schedule *Schedule) Clone(name string) *Schedule {
	return &Schedule{
		Name:    name,
		entries: slices.Clone(schedule.entries),
	}
}
