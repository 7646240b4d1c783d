package model

import (
	"fmt"
	"time"
)

// ClockTime is a time of day expressed in minutes since midnight
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func ParseClockTime(value string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time \"%v\": %w", value, err)
	}
	return NewClockTime(parsed.Hour(), parsed.Minute()), nil
}

func (clock ClockTime) Hour() int {
	return int(clock) / 60
}

func (clock ClockTime) Minute() int {
	return int(clock) % 60
}

func (clock ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", clock.Hour(), clock.Minute())
}

// TimeSlot is a weekly time window. IsLabSlot is a classification decided by whoever builds the slot
type TimeSlot struct {
	Day       time.Weekday
	Start     ClockTime
	End       ClockTime
	IsLabSlot bool
}

// Equal ignores the lab classification
func (slot TimeSlot) Equal(other TimeSlot) bool {
	return slot.Day == other.Day && slot.Start == other.Start && slot.End == other.End
}

// Overlaps treats touching endpoints as overlapping
func (slot TimeSlot) Overlaps(other TimeSlot) bool {
	if slot.Day != other.Day {
		return false
	}
	return slot.Start <= other.End && other.Start <= slot.End
}

// Hours counts a started hour as a full one
func (slot TimeSlot) Hours() int {
	hours := slot.End.Hour() - slot.Start.Hour()
	if slot.End.Minute() > 0 {
		hours++
	}
	return hours
}

func (slot TimeSlot) String() string {
	kind := "Lecture"
	if slot.IsLabSlot {
		kind = "Lab"
	}
	return fmt.Sprintf("%v %v-%v (%v)", slot.Day, slot.Start, slot.End, kind)
}

// IsAdjacentDay reports whether two weekdays are consecutive, counting Friday and Monday as consecutive
func IsAdjacentDay(day1, day2 time.Weekday) bool {
	if !IsWorkingDay(day1) || !IsWorkingDay(day2) {
		return false
	}
	difference := int(day1) - int(day2)
	if difference == 1 || difference == -1 {
		return true
	}
	return (day1 == time.Monday && day2 == time.Friday) || (day1 == time.Friday && day2 == time.Monday)
}

func IsWorkingDay(day time.Weekday) bool {
	return day >= time.Monday && day <= time.Friday
}

var WorkingDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}
