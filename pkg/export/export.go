package export

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/limaJavier/timetable-builder/pkg/model"
	"github.com/samber/lo"
)

// ScheduleRow is the flat form of a single scheduled session
type ScheduleRow struct {
	Suggestion     string `csv:"suggestion" json:"-"`
	CourseCode     string `csv:"course_code" json:"courseCode"`
	CourseName     string `csv:"course_name" json:"courseName"`
	InstructorId   string `csv:"instructor_id" json:"instructorId"`
	InstructorName string `csv:"instructor" json:"instructor"`
	Room           string `csv:"room" json:"room"`
	Day            string `csv:"day" json:"day"`
	Start          string `csv:"start" json:"start"`
	End            string `csv:"end" json:"end"`
	Kind           string `csv:"kind" json:"kind"`
}

type Suggestion struct {
	Name       string        `json:"name"`
	Entries    []ScheduleRow `json:"entries"`
	Violations []string      `json:"violations"`
}

type Report struct {
	RunID       uuid.UUID    `json:"runId"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Rows flattens the schedule ordered by weekday, start time and course code
func Rows(schedule *model.Schedule) []ScheduleRow {
	entries := schedule.Entries()
	slices.SortStableFunc(entries, func(entry1, entry2 model.Assignment) int {
		if day := int(entry1.Slot.Day) - int(entry2.Slot.Day); day != 0 {
			return day
		}
		if start := int(entry1.Slot.Start) - int(entry2.Slot.Start); start != 0 {
			return start
		}
		return cmp.Compare(entry1.Course.Code, entry2.Course.Code)
	})

	return lo.Map(entries, func(entry model.Assignment, _ int) ScheduleRow {
		return ScheduleRow{
			Suggestion:     schedule.Name,
			CourseCode:     entry.Course.Code,
			CourseName:     entry.Course.Name,
			InstructorId:   entry.Instructor.Id,
			InstructorName: entry.Instructor.Name,
			Room:           entry.Room.Id,
			Day:            entry.Slot.Day.String(),
			Start:          entry.Slot.Start.String(),
			End:            entry.Slot.End.String(),
			Kind:           entry.SessionKind(),
		}
	})
}

// NewReport pairs every suggestion with its policy violations under a fresh run id
func NewReport(suggestions []*model.Schedule, checker model.ConflictChecker) Report {
	return Report{
		RunID: uuid.New(),
		Suggestions: lo.Map(suggestions, func(schedule *model.Schedule, _ int) Suggestion {
			return Suggestion{
				Name:       schedule.Name,
				Entries:    Rows(schedule),
				Violations: checker.CheckPolicyCompliance(schedule),
			}
		}),
	}
}

func WriteJSON(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("cannot write json report: %w", err)
	}
	return nil
}

// WriteCSV writes the sessions of every suggestion as one table, tagged by suggestion name
func WriteCSV(w io.Writer, suggestions []*model.Schedule) error {
	rows := lo.FlatMap(suggestions, func(schedule *model.Schedule, _ int) []ScheduleRow {
		return Rows(schedule)
	})
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	return nil
}
