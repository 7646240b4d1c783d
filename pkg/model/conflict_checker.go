package model

type ConflictChecker interface {
	// Checks whether two assignments overlap in time while sharing a room, an instructor or a course
	ConflictExists(assignment1, assignment2 Assignment) bool

	// Checks whether the candidate conflicts with any of the existing assignments
	HasConflict(candidate Assignment, existing []Assignment) bool

	// Checks whether the course can be taught by the instructor in the room at the given slot without
	// conflicting with the existing assignments
	IsSlotAvailable(course Course, instructor Instructor, room Room, slot TimeSlot, existing []Assignment) bool

	// Reports every policy violation found in the schedule; an empty result means the schedule complies
	CheckPolicyCompliance(schedule *Schedule) []string

	// Checks whether every course keeps a day of gap between its sessions of the same kind
	SatisfiesDayGap(schedule *Schedule) bool
}

// PolicyLimits holds the institutional thresholds enforced by the policy report
type PolicyLimits struct {
	MaxInstructorHours int
	MinRoomHours       int
	MinRoomDays        int
}

const (
	DefaultMaxInstructorHours = 20
	DefaultMinRoomHours       = 20
	DefaultMinRoomDays        = 4
)

func DefaultPolicyLimits() PolicyLimits {
	return PolicyLimits{
		MaxInstructorHours: DefaultMaxInstructorHours,
		MinRoomHours:       DefaultMinRoomHours,
		MinRoomDays:        DefaultMinRoomDays,
	}
}

func NewConflictChecker(limits PolicyLimits) ConflictChecker {
	return &conflictCheckerStandard{
		limits: limits,
	}
}
