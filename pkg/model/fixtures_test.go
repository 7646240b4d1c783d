package model

import "time"

var (
	algebra   = Course{Code: "MATH101", Name: "Algebra", Credits: 3, LectureHours: 2}
	physics   = Course{Code: "PHY101", Name: "Physics", Credits: 4, LectureHours: 1}
	chemistry = Course{Code: "CHEM101", Name: "Chemistry", Credits: 3, LectureHours: 1, LabHours: 3}

	alice = Instructor{Id: "I1", Name: "Alice", Courses: []string{"MATH101", "PHY101", "CHEM101"}}
	bob   = Instructor{Id: "I2", Name: "Bob", Courses: []string{"PHY101"}}

	roomA = Room{Id: "R101", Capacity: 40}
	roomB = Room{Id: "R102", Capacity: 12}
)

func lecture(course Course, instructor Instructor, room Room, day time.Weekday, startHour int) Assignment {
	return NewAssignment(course, instructor, room, slotAt(day, startHour, startHour+1), false)
}

func lab(course Course, instructor Instructor, room Room, day time.Weekday, startHour int) Assignment {
	return NewAssignment(course, instructor, room, slotAt(day, startHour, startHour+2), true)
}

func scheduleOf(name string, entries ...Assignment) *Schedule {
	schedule := NewSchedule(name)
	for _, entry := range entries {
		if !schedule.AddEntry(entry) {
			panic("fixture entries must not conflict: " + entry.String())
		}
	}
	return schedule
}
