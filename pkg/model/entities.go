package model

import "github.com/samber/lo"

type Course struct {
	Code         string `mapstructure:"code" json:"code" validate:"required"`
	Name         string `mapstructure:"name" json:"name"`
	Credits      int    `mapstructure:"credits" json:"credits" validate:"min=1,max=5"`
	LectureHours int    `mapstructure:"lectureHours" json:"lectureHours" validate:"min=0,max=6"`
	LabHours     int    `mapstructure:"labHours" json:"labHours" validate:"min=0,max=3"`
}

// Sessions returns how many lecture and lab sessions the course needs. Any positive amount of lab hours
// is combined into a single lab session.
func (course Course) Sessions() (lectures, labs int) {
	lectures = course.LectureHours
	if course.LabHours > 0 {
		labs = 1
	}
	return lectures, labs
}

func (course Course) weight() int {
	return course.LectureHours + course.LabHours
}

type Instructor struct {
	Id      string   `mapstructure:"id" json:"id" validate:"required"`
	Name    string   `mapstructure:"name" json:"name"`
	Courses []string `mapstructure:"courses" json:"courses" validate:"dive,required"`
}

func (instructor Instructor) CanTeach(courseCode string) bool {
	return lo.Contains(instructor.Courses, courseCode)
}

type Room struct {
	Id       string `mapstructure:"id" json:"id" validate:"required"`
	Capacity int    `mapstructure:"capacity" json:"capacity" validate:"min=10,max=300"`
}
