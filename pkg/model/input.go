package model

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawTimeSlot struct {
	Day   time.Weekday `mapstructure:"day"`
	Start ClockTime    `mapstructure:"start"`
	End   ClockTime    `mapstructure:"end"`
	Lab   *bool        `mapstructure:"lab"` // When absent, slots of two hours or more are lab slots
}

type RawModelInput struct {
	Courses     []Course      `mapstructure:"courses"`
	Instructors []Instructor  `mapstructure:"instructors"`
	Rooms       []Room        `mapstructure:"rooms"`
	Slots       []RawTimeSlot `mapstructure:"slots"`
}

type ModelInput struct {
	Courses     []Course
	Instructors []Instructor
	Rooms       []Room
	Slots       []TimeSlot // Empty when the input leaves the slot grid to the caller
}

var (
	weekdayType = reflect.TypeOf(time.Weekday(0))
	clockType   = reflect.TypeOf(ClockTime(0))
	validate    = validator.New(validator.WithRequiredStructEnabled())
)

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}
	return ParseInput(bytes)
}

func ParseInput(bytes []byte) (ModelInput, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var rawInput RawModelInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(weekdayHook, clockTimeHook),
		Result:     &rawInput,
	})
	if err != nil {
		return ModelInput{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}

	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	//** Validate entities
	for _, course := range rawInput.Courses {
		if err := validate.Struct(course); err != nil {
			return ModelInput{}, fmt.Errorf("invalid course \"%v\": %w", course.Code, err)
		}
	}
	for _, instructor := range rawInput.Instructors {
		if err := validate.Struct(instructor); err != nil {
			return ModelInput{}, fmt.Errorf("invalid instructor \"%v\": %w", instructor.Id, err)
		}
	}
	for _, room := range rawInput.Rooms {
		if err := validate.Struct(room); err != nil {
			return ModelInput{}, fmt.Errorf("invalid room \"%v\": %w", room.Id, err)
		}
	}

	//** Make sure identifiers are unique
	if duplicates := lo.FindDuplicatesBy(rawInput.Courses, func(course Course) string { return course.Code }); len(duplicates) > 0 {
		return ModelInput{}, fmt.Errorf("duplicate course code \"%v\"", duplicates[0].Code)
	}
	if duplicates := lo.FindDuplicatesBy(rawInput.Instructors, func(instructor Instructor) string { return instructor.Id }); len(duplicates) > 0 {
		return ModelInput{}, fmt.Errorf("duplicate instructor id \"%v\"", duplicates[0].Id)
	}
	if duplicates := lo.FindDuplicatesBy(rawInput.Rooms, func(room Room) string { return room.Id }); len(duplicates) > 0 {
		return ModelInput{}, fmt.Errorf("duplicate room id \"%v\"", duplicates[0].Id)
	}

	//** Instructors may only reference known courses
	codes := lo.Map(rawInput.Courses, func(course Course, _ int) string { return course.Code })
	for _, instructor := range rawInput.Instructors {
		if unknown, _ := lo.Difference(instructor.Courses, codes); len(unknown) > 0 {
			return ModelInput{}, fmt.Errorf("instructor \"%v\" references unknown courses %v", instructor.Id, unknown)
		}
	}

	//** Build time slots
	slots := make([]TimeSlot, 0, len(rawInput.Slots))
	for _, rawSlot := range rawInput.Slots {
		if !IsWorkingDay(rawSlot.Day) {
			return ModelInput{}, fmt.Errorf("slot day must be between Monday and Friday: %v", rawSlot.Day)
		} else if rawSlot.End <= rawSlot.Start {
			return ModelInput{}, fmt.Errorf("slot must end after it starts: %v-%v", rawSlot.Start, rawSlot.End)
		}

		slot := TimeSlot{Day: rawSlot.Day, Start: rawSlot.Start, End: rawSlot.End}
		if rawSlot.Lab != nil {
			slot.IsLabSlot = *rawSlot.Lab
		} else {
			slot.IsLabSlot = slot.End-slot.Start >= NewClockTime(2, 0)
		}
		slots = append(slots, slot)
	}

	return ModelInput{
		Courses:     rawInput.Courses,
		Instructors: rawInput.Instructors,
		Rooms:       rawInput.Rooms,
		Slots:       slots,
	}, nil
}

func ParseWeekday(value string) (time.Weekday, error) {
	for _, day := range WorkingDays {
		if strings.EqualFold(day.String(), value) || strings.EqualFold(day.String()[:3], value) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday \"%v\"", value)
}

func weekdayHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != weekdayType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseWeekday(data.(string))
}

func clockTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != clockType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseClockTime(data.(string))
}
