package model

import (
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(seed uint64) AutoScheduler {
	return NewAutoScheduler(NewConflictChecker(DefaultPolicyLimits()), NewRandom(seed), nil, DefaultSchedulerOptions())
}

func assertConflictFree(t *testing.T, schedule *Schedule) {
	entries := schedule.Entries()
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			assert.False(t, entries[i].ConflictsWith(entries[j]), "%v conflicts with %v", entries[i], entries[j])
		}
	}
}

func TestBuildTimetable(t *testing.T) {
	t.Run("Two courses sharing one instructor and one room", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			// Arrange
			scheduler := newTestScheduler(seed)
			courses := []Course{
				{Code: "MATH101", Credits: 3, LectureHours: 2},
				{Code: "PHY101", Credits: 3, LectureHours: 1},
			}
			instructors := []Instructor{{Id: "I1", Name: "Alice", Courses: []string{"MATH101", "PHY101"}}}
			rooms := []Room{roomA}
			slots := []TimeSlot{
				slotAt(time.Monday, 8, 9),
				slotAt(time.Monday, 10, 11),
				slotAt(time.Wednesday, 8, 9),
				slotAt(time.Wednesday, 10, 11),
				slotAt(time.Wednesday, 13, 14),
			}

			// Act
			schedule, ok := scheduler.BuildTimetable("Scenario A", courses, instructors, rooms, slots)

			// Assert
			require.True(t, ok)
			assert.Equal(t, "Scenario A", schedule.Name)
			assert.Equal(t, 3, schedule.Len())
			assert.Len(t, schedule.EntriesForCourse("MATH101"), 2)
			assert.Len(t, schedule.EntriesForCourse("PHY101"), 1)
			assertConflictFree(t, schedule)
		}
	})

	t.Run("Course without eligible instructor is skipped", func(t *testing.T) {
		// Arrange
		scheduler := newTestScheduler(7)
		orphan := Course{Code: "BIO101", Credits: 3, LectureHours: 1}
		courses := []Course{orphan, physics}
		slots := GenerateSlotCatalog(8, 18, 2)

		// Act
		schedule, ok := scheduler.BuildTimetable("Scenario B", courses, []Instructor{bob}, []Room{roomA}, slots)

		// Assert
		require.True(t, ok)
		assert.Empty(t, schedule.EntriesForCourse("BIO101"))
		assert.Len(t, schedule.EntriesForCourse("PHY101"), 1)
	})

	t.Run("Lab goes to a room large enough", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			// Arrange
			scheduler := newTestScheduler(seed)
			course := Course{Code: "CHEM101", Credits: 3, LectureHours: 0, LabHours: 3}
			rooms := []Room{{Id: "SMALL", Capacity: 10}, {Id: "LARGE", Capacity: 40}}

			// Act
			schedule, ok := scheduler.BuildTimetable("Scenario C", []Course{course}, []Instructor{alice}, rooms, GenerateSlotCatalog(8, 18, 2))

			// Assert
			require.True(t, ok)
			entries := schedule.Entries()
			require.Len(t, entries, 1)
			assert.True(t, entries[0].IsLab)
			assert.True(t, entries[0].Slot.IsLabSlot)
			assert.Equal(t, "LARGE", entries[0].Room.Id)
		}
	})

	t.Run("Lab falls back to any room when none is large enough", func(t *testing.T) {
		// Arrange
		scheduler := newTestScheduler(3)
		course := Course{Code: "CHEM101", Credits: 5, LectureHours: 1, LabHours: 3}
		rooms := []Room{{Id: "SMALL", Capacity: 10}, {Id: "MEDIUM", Capacity: 20}}

		// Act
		schedule, ok := scheduler.BuildTimetable("Fallback", []Course{course}, []Instructor{alice}, rooms, GenerateSlotCatalog(8, 18, 2))

		// Assert
		require.True(t, ok)
		labs := lo.Filter(schedule.Entries(), func(entry Assignment, _ int) bool { return entry.IsLab })
		require.Len(t, labs, 1)
		assert.Contains(t, []string{"SMALL", "MEDIUM"}, labs[0].Room.Id)
	})

	t.Run("Sessions of the same kind keep a day of gap", func(t *testing.T) {
		// Arrange
		scheduler := newTestScheduler(11)
		checker := NewConflictChecker(DefaultPolicyLimits())
		courses := []Course{
			{Code: "MATH101", Credits: 3, LectureHours: 2, LabHours: 0},
			{Code: "PHY101", Credits: 4, LectureHours: 2, LabHours: 2},
			{Code: "CHEM101", Credits: 3, LectureHours: 1, LabHours: 3},
			{Code: "CS101", Credits: 4, LectureHours: 2, LabHours: 1},
			{Code: "ENG101", Credits: 2, LectureHours: 1},
		}
		instructors := []Instructor{
			{Id: "I1", Name: "Alice", Courses: []string{"MATH101", "PHY101"}},
			{Id: "I2", Name: "Bob", Courses: []string{"CHEM101", "CS101"}},
			{Id: "I3", Name: "Carol", Courses: []string{"CS101", "ENG101", "MATH101"}},
		}
		rooms := []Room{{Id: "R1", Capacity: 30}, {Id: "R2", Capacity: 60}}

		// Act
		schedule, ok := scheduler.BuildTimetable("Week", courses, instructors, rooms, GenerateSlotCatalog(8, 18, 2))

		// Assert
		require.True(t, ok)
		assert.Equal(t, 2+3+2+3+1, schedule.Len())
		assert.True(t, checker.SatisfiesDayGap(schedule))
		assertConflictFree(t, schedule)
		for _, entry := range schedule.Entries() {
			assert.True(t, entry.Instructor.CanTeach(entry.Course.Code))
			assert.Equal(t, entry.IsLab, entry.Slot.IsLabSlot)
		}
	})

	t.Run("Unplaceable session fails the whole timetable", func(t *testing.T) {
		// Arrange
		scheduler := newTestScheduler(5)
		slots := []TimeSlot{slotAt(time.Monday, 8, 9), slotAt(time.Monday, 10, 11)}

		// Act
		schedule, ok := scheduler.BuildTimetable("Infeasible", []Course{algebra}, []Instructor{alice}, []Room{roomA}, slots)

		// Assert
		assert.False(t, ok)
		assert.Nil(t, schedule)
	})

	t.Run("No rooms at all", func(t *testing.T) {
		scheduler := newTestScheduler(5)

		schedule, ok := scheduler.BuildTimetable("Roomless", []Course{physics}, []Instructor{bob}, nil, GenerateSlotCatalog(8, 18, 2))

		assert.False(t, ok)
		assert.Nil(t, schedule)
	})

	t.Run("Heaviest courses are placed first", func(t *testing.T) {
		// Arrange
		scheduler := newTestScheduler(9)
		light := Course{Code: "LIGHT", Credits: 1, LectureHours: 1}
		heavy := Course{Code: "HEAVY", Credits: 3, LectureHours: 2, LabHours: 2}
		instructor := Instructor{Id: "I1", Name: "Alice", Courses: []string{"LIGHT", "HEAVY"}}

		// Act
		schedule, ok := scheduler.BuildTimetable("Order", []Course{light, heavy}, []Instructor{instructor}, []Room{roomA}, GenerateSlotCatalog(8, 18, 2))

		// Assert
		require.True(t, ok)
		entries := schedule.Entries()
		require.Len(t, entries, 4)
		assert.Equal(t, "HEAVY", entries[0].Course.Code)
		assert.Equal(t, "LIGHT", entries[3].Course.Code)
	})
}

func TestGenerateSuggestions(t *testing.T) {
	t.Run("Only one distinct timetable exists", func(t *testing.T) {
		g := gomega.NewWithT(t)

		// Arrange
		scheduler := newTestScheduler(42)
		slots := []TimeSlot{slotAt(time.Tuesday, 9, 10)}

		// Act
		suggestions := scheduler.GenerateSuggestions([]Course{physics}, []Instructor{bob}, []Room{roomA}, slots, 5)

		// Assert
		g.Expect(len(suggestions)).To(gomega.BeNumerically(">=", 1))
		g.Expect(len(suggestions)).To(gomega.BeNumerically("<=", 5))
		for i := range suggestions {
			for j := i + 1; j < len(suggestions); j++ {
				g.Expect(Similarity(suggestions[i], suggestions[j])).To(gomega.BeNumerically("<=", DefaultSimilarityThreshold))
			}
		}
	})

	t.Run("Suggestions are pairwise diverse", func(t *testing.T) {
		g := gomega.NewWithT(t)

		// Arrange
		scheduler := newTestScheduler(2024)
		courses := []Course{algebra, physics, chemistry}
		instructors := []Instructor{alice, bob}
		rooms := []Room{roomA, roomB}

		// Act
		suggestions := scheduler.GenerateSuggestions(courses, instructors, rooms, GenerateSlotCatalog(8, 18, 2), 5)

		// Assert
		g.Expect(suggestions).To(gomega.HaveLen(5))
		names := lo.Map(suggestions, func(schedule *Schedule, _ int) string { return schedule.Name })
		g.Expect(names).To(gomega.Equal([]string{"Suggestion 1", "Suggestion 2", "Suggestion 3", "Suggestion 4", "Suggestion 5"}))
		for i, suggestion := range suggestions {
			assertConflictFree(t, suggestion)
			g.Expect(suggestion.Len()).To(gomega.Equal(2 + 1 + 2))
			for j := i + 1; j < len(suggestions); j++ {
				g.Expect(Similarity(suggestion, suggestions[j])).To(gomega.BeNumerically("<=", DefaultSimilarityThreshold))
			}
		}
	})

	t.Run("Infeasible input yields no suggestions", func(t *testing.T) {
		scheduler := newTestScheduler(1)
		slots := []TimeSlot{slotAt(time.Monday, 8, 9)}

		suggestions := scheduler.GenerateSuggestions([]Course{algebra}, []Instructor{alice}, []Room{roomA}, slots, 3)

		assert.NotNil(t, suggestions)
		assert.Empty(t, suggestions)
	})

	t.Run("Non positive count", func(t *testing.T) {
		scheduler := newTestScheduler(1)

		assert.Empty(t, scheduler.GenerateSuggestions([]Course{physics}, []Instructor{bob}, []Room{roomA}, GenerateSlotCatalog(8, 18, 2), 0))
		assert.Empty(t, scheduler.GenerateSuggestions([]Course{physics}, []Instructor{bob}, []Room{roomA}, GenerateSlotCatalog(8, 18, 2), -1))
	})
}

func TestNewAutoSchedulerDefaults(t *testing.T) {
	scheduler := NewAutoScheduler(nil, nil, nil, SchedulerOptions{}).(*randomizedScheduler)

	assert.NotNil(t, scheduler.checker)
	assert.NotNil(t, scheduler.random)
	assert.NotNil(t, scheduler.logger)
	assert.Equal(t, DefaultSchedulerOptions(), scheduler.options)
}
