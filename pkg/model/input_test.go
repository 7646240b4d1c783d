package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFromJson(t *testing.T) {
	// Act
	input, err := InputFromJson("testdata/sample.json")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []Course{
		{Code: "MATH101", Name: "Algebra", Credits: 3, LectureHours: 2, LabHours: 0},
		{Code: "PHY101", Name: "Physics", Credits: 4, LectureHours: 2, LabHours: 2},
		{Code: "CHEM101", Name: "Chemistry", Credits: 3, LectureHours: 1, LabHours: 3},
	}, input.Courses)
	assert.Equal(t, []Instructor{
		{Id: "I1", Name: "Alice", Courses: []string{"MATH101", "PHY101"}},
		{Id: "I2", Name: "Bob", Courses: []string{"CHEM101"}},
	}, input.Instructors)
	assert.Equal(t, []Room{{Id: "R101", Capacity: 40}, {Id: "R102", Capacity: 25}}, input.Rooms)
	assert.Equal(t, []TimeSlot{
		{Day: time.Monday, Start: NewClockTime(8, 0), End: NewClockTime(9, 0), IsLabSlot: false},
		{Day: time.Monday, Start: NewClockTime(10, 0), End: NewClockTime(12, 0), IsLabSlot: true},
		{Day: time.Wednesday, Start: NewClockTime(8, 0), End: NewClockTime(9, 0), IsLabSlot: false},
		{Day: time.Wednesday, Start: NewClockTime(13, 0), End: NewClockTime(15, 0), IsLabSlot: true},
		{Day: time.Friday, Start: NewClockTime(9, 30), End: NewClockTime(11, 30), IsLabSlot: false},
	}, input.Slots)
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson("testdata/missing.json")

	assert.ErrorContains(t, err, "cannot read input file")
}

func TestParseInput(t *testing.T) {
	t.Run("Slots are optional", func(t *testing.T) {
		input, err := ParseInput([]byte(`{
			"courses": [{"code": "MATH101", "credits": 3, "lectureHours": 2}],
			"instructors": [{"id": "I1", "courses": ["MATH101"]}],
			"rooms": [{"id": "R101", "capacity": 30}]
		}`))

		require.NoError(t, err)
		assert.Empty(t, input.Slots)
		assert.Len(t, input.Courses, 1)
	})

	scenarios := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "malformed json",
			input:   `{"courses": [`,
			message: "unexpected end of JSON input",
		},
		{
			name:    "credits out of range",
			input:   `{"courses": [{"code": "MATH101", "credits": 9, "lectureHours": 2}]}`,
			message: "invalid course \"MATH101\"",
		},
		{
			name:    "missing course code",
			input:   `{"courses": [{"credits": 3, "lectureHours": 2}]}`,
			message: "invalid course",
		},
		{
			name:    "room too small",
			input:   `{"rooms": [{"id": "R101", "capacity": 5}]}`,
			message: "invalid room \"R101\"",
		},
		{
			name: "duplicate course",
			input: `{"courses": [
				{"code": "MATH101", "credits": 3, "lectureHours": 2},
				{"code": "MATH101", "credits": 2, "lectureHours": 1}
			]}`,
			message: "duplicate course code \"MATH101\"",
		},
		{
			name:    "duplicate room",
			input:   `{"rooms": [{"id": "R101", "capacity": 30}, {"id": "R101", "capacity": 40}]}`,
			message: "duplicate room id \"R101\"",
		},
		{
			name: "unknown course reference",
			input: `{
				"courses": [{"code": "MATH101", "credits": 3, "lectureHours": 2}],
				"instructors": [{"id": "I1", "courses": ["MATH101", "BIO101"]}]
			}`,
			message: "instructor \"I1\" references unknown courses [BIO101]",
		},
		{
			name:    "unknown weekday",
			input:   `{"slots": [{"day": "Funday", "start": "08:00", "end": "09:00"}]}`,
			message: "unknown weekday \"Funday\"",
		},
		{
			name:    "malformed clock time",
			input:   `{"slots": [{"day": "Monday", "start": "8 o'clock", "end": "09:00"}]}`,
			message: "cannot decode input",
		},
		{
			name:    "slot ending before it starts",
			input:   `{"slots": [{"day": "Monday", "start": "10:00", "end": "09:00"}]}`,
			message: "slot must end after it starts: 10:00-09:00",
		},
		{
			name:    "weekend slot",
			input:   `{"slots": [{"day": 6, "start": "10:00", "end": "11:00"}]}`,
			message: "slot day must be between Monday and Friday",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			_, err := ParseInput([]byte(scenario.input))

			assert.ErrorContains(t, err, scenario.message)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	for value, expected := range map[string]time.Weekday{
		"Monday":  time.Monday,
		"tuesday": time.Tuesday,
		"WED":     time.Wednesday,
		"thu":     time.Thursday,
		"Friday":  time.Friday,
	} {
		day, err := ParseWeekday(value)

		assert.NoError(t, err)
		assert.Equal(t, expected, day)
	}

	_, err := ParseWeekday("Saturday")
	assert.Error(t, err)
}
