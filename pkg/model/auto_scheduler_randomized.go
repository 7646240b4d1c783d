package model

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type randomizedScheduler struct {
	checker ConflictChecker
	random  *rand.Rand
	logger  *zap.Logger
	options SchedulerOptions
}

func (scheduler *randomizedScheduler) BuildTimetable(name string, courses []Course, instructors []Instructor, rooms []Room, slots []TimeSlot) (*Schedule, bool) {
	schedule := NewSchedule(name)

	//** Place the heaviest courses first to reduce contention at the end
	sortedCourses := slices.Clone(courses)
	slices.SortStableFunc(sortedCourses, func(course1, course2 Course) int {
		return course2.weight() - course1.weight()
	})

	for _, course := range sortedCourses {
		//** Find suitable instructors
		eligible := lo.Filter(instructors, func(instructor Instructor, _ int) bool {
			return instructor.CanTeach(course.Code)
		})
		// A course nobody can teach is left out of the timetable
		if len(eligible) == 0 {
			scheduler.logger.Debug("skipping course without eligible instructors", zap.String("timetable", name), zap.String("course", course.Code))
			continue
		}

		//** Place lectures and lab
		lectures, labs := course.Sessions()
		if !scheduler.placeSessions(schedule, course, eligible, rooms, slots, lectures, false) ||
			!scheduler.placeSessions(schedule, course, eligible, rooms, slots, labs, true) {
			scheduler.logger.Debug("timetable construction failed", zap.String("timetable", name), zap.String("course", course.Code))
			return nil, false
		}
	}

	return schedule, true
}

func (scheduler *randomizedScheduler) GenerateSuggestions(courses []Course, instructors []Instructor, rooms []Room, slots []TimeSlot, count int) []*Schedule {
	suggestions := make([]*Schedule, 0, max(count, 0))
	if count <= 0 {
		return suggestions
	}

	failures, maxFailures := 0, count+scheduler.options.FailureSlack
	for len(suggestions) < count && failures < maxFailures {
		name := fmt.Sprintf("Suggestion %d", len(suggestions)+1)

		candidate, ok := scheduler.BuildTimetable(name, courses, instructors, rooms, slots)
		if !ok {
			failures++
			continue
		}
		if tooSimilar(suggestions, candidate, scheduler.options.SimilarityThreshold) {
			scheduler.logger.Debug("discarding similar timetable", zap.String("timetable", name))
			failures++
			continue
		}

		suggestions = append(suggestions, candidate)
	}

	scheduler.logger.Info("suggestions generated",
		zap.Int("requested", count),
		zap.Int("accepted", len(suggestions)),
		zap.Int("failures", failures),
	)
	return suggestions
}

// placeSessions schedules the given number of sessions of one kind for a course. Sessions of the same kind
// never share a weekday nor fall on adjacent ones.
func (scheduler *randomizedScheduler) placeSessions(schedule *Schedule, course Course, instructors []Instructor, rooms []Room, slots []TimeSlot, sessions int, isLab bool) bool {
	if sessions == 0 {
		return true
	}

	candidateRooms := rooms
	if isLab {
		candidateRooms = roomsWithCapacity(rooms, course.Credits*scheduler.options.LabCapacityFactor)
		if len(candidateRooms) == 0 {
			candidateRooms = rooms // Fallback to all rooms
		}
	}
	if len(candidateRooms) == 0 {
		return false
	}

	usedDays := make(map[time.Weekday]bool)
	for range sessions {
		placed := false
		candidateSlots := suitableSlots(slots, isLab, usedDays)

		for attempt := 0; attempt < scheduler.options.MaxAttemptsPerSession && !placed; attempt++ {
			instructor := instructors[scheduler.random.IntN(len(instructors))]
			room := candidateRooms[scheduler.random.IntN(len(candidateRooms))]

			// No slot left for this kind of session, try again
			if len(candidateSlots) == 0 {
				continue
			}
			slot := candidateSlots[scheduler.random.IntN(len(candidateSlots))]

			if !scheduler.checker.IsSlotAvailable(course, instructor, room, slot, schedule.entries) {
				continue
			}
			if schedule.AddEntry(NewAssignment(course, instructor, room, slot, isLab)) {
				usedDays[slot.Day] = true
				placed = true
			}
		}

		if !placed {
			scheduler.logger.Debug("could not place session",
				zap.String("course", course.Code),
				zap.Bool("lab", isLab),
				zap.Int("attempts", scheduler.options.MaxAttemptsPerSession),
			)
			return false
		}
	}

	return true
}

// suitableSlots keeps the slots of the requested kind whose weekday is neither used nor adjacent to a used one
func suitableSlots(slots []TimeSlot, isLab bool, usedDays map[time.Weekday]bool) []TimeSlot {
	return lo.Filter(slots, func(slot TimeSlot, _ int) bool {
		if slot.IsLabSlot != isLab || usedDays[slot.Day] {
			return false
		}
		return !lo.SomeBy(lo.Keys(usedDays), func(day time.Weekday) bool {
			return IsAdjacentDay(day, slot.Day)
		})
	})
}

func roomsWithCapacity(rooms []Room, minCapacity int) []Room {
	return lo.Filter(rooms, func(room Room, _ int) bool {
		return room.Capacity >= minCapacity
	})
}
