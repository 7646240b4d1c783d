package model

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
)

type conflictCheckerStandard struct {
	limits PolicyLimits
}

func (checker *conflictCheckerStandard) ConflictExists(assignment1, assignment2 Assignment) bool {
	return assignment1.ConflictsWith(assignment2)
}

func (checker *conflictCheckerStandard) HasConflict(candidate Assignment, existing []Assignment) bool {
	return lo.SomeBy(existing, func(assignment Assignment) bool {
		return checker.ConflictExists(candidate, assignment)
	})
}

func (checker *conflictCheckerStandard) IsSlotAvailable(course Course, instructor Instructor, room Room, slot TimeSlot, existing []Assignment) bool {
	potential := NewAssignment(course, instructor, room, slot, slot.IsLabSlot)
	return !checker.HasConflict(potential, existing)
}

func (checker *conflictCheckerStandard) CheckPolicyCompliance(schedule *Schedule) []string {
	violations := make([]string, 0)
	violations = append(violations, checker.dayGapViolations(schedule)...)
	violations = append(violations, checker.instructorLoadViolations(schedule)...)
	violations = append(violations, checker.roomUtilizationViolations(schedule)...)
	return violations
}

func (checker *conflictCheckerStandard) SatisfiesDayGap(schedule *Schedule) bool {
	return len(checker.dayGapViolations(schedule)) == 0
}

// Every pair of same-kind sessions of a course is compared, so the Friday/Monday wrap is caught regardless
// of the order the days sort in
func (checker *conflictCheckerStandard) dayGapViolations(schedule *Schedule) []string {
	violations := make([]string, 0)
	perCourse := lo.GroupBy(schedule.entries, func(entry Assignment) string { return entry.Course.Code })

	for _, courseCode := range sortedKeys(perCourse) {
		lectures, labs := lo.FilterReject(perCourse[courseCode], func(entry Assignment, _ int) bool { return !entry.IsLab })

		for _, sessions := range [][]Assignment{lectures, labs} {
			if len(sessions) <= 1 {
				continue
			}
			days := lo.Map(sessions, func(entry Assignment, _ int) time.Weekday { return entry.Slot.Day })
			slices.Sort(days)

			for i := 0; i < len(days)-1; i++ {
				for j := i + 1; j < len(days); j++ {
					if IsAdjacentDay(days[i], days[j]) {
						violations = append(violations, fmt.Sprintf("%v has %v sessions on adjacent days (%v and %v)", courseCode, sessions[0].SessionKind(), days[i], days[j]))
					}
				}
			}
		}
	}

	return violations
}

func (checker *conflictCheckerStandard) instructorLoadViolations(schedule *Schedule) []string {
	violations := make([]string, 0)
	hours := make(map[string]int)
	names := make(map[string]string)

	for _, entry := range schedule.entries {
		hours[entry.Instructor.Id] += entry.Slot.Hours()
		names[entry.Instructor.Id] = entry.Instructor.Name
	}

	for _, instructorId := range sortedKeys(hours) {
		if hours[instructorId] > checker.limits.MaxInstructorHours {
			violations = append(violations, fmt.Sprintf("Instructor %v has an excessive teaching load of %v hours", names[instructorId], hours[instructorId]))
		}
	}

	return violations
}

func (checker *conflictCheckerStandard) roomUtilizationViolations(schedule *Schedule) []string {
	violations := make([]string, 0)
	hours := make(map[string]int)
	days := make(map[string]map[time.Weekday]bool)

	for _, entry := range schedule.entries {
		roomId := entry.Room.Id
		hours[roomId] += entry.Slot.Hours()
		if _, ok := days[roomId]; !ok {
			days[roomId] = make(map[time.Weekday]bool)
		}
		days[roomId][entry.Slot.Day] = true
	}

	for _, roomId := range sortedKeys(hours) {
		if hours[roomId] < checker.limits.MinRoomHours {
			violations = append(violations, fmt.Sprintf("Room %v has low utilization of only %v hours per week", roomId, hours[roomId]))
		}
		if len(days[roomId]) < checker.limits.MinRoomDays {
			violations = append(violations, fmt.Sprintf("Room %v is only used on %v days of the week", roomId, len(days[roomId])))
		}
	}

	return violations
}

func sortedKeys[K cmp.Ordered, V any](dictionary map[K]V) []K {
	keys := lo.Keys(dictionary)
	slices.Sort(keys)
	return keys
}
