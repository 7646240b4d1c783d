package model

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

type AutoScheduler interface {
	// Builds a single timetable. Returns false when some session could not be placed within its attempt
	// budget, in which case the returned schedule is nil.
	BuildTimetable(
		name string,
		courses []Course,
		instructors []Instructor,
		rooms []Room,
		slots []TimeSlot,
	) (*Schedule, bool)

	// Builds up to count timetables that are pairwise not too similar. Fewer (even zero) suggestions are
	// returned when enough diverse timetables cannot be found.
	GenerateSuggestions(
		courses []Course,
		instructors []Instructor,
		rooms []Room,
		slots []TimeSlot,
		count int,
	) []*Schedule
}

const (
	MaxAttemptsPerSession      = 1000
	DefaultSimilarityThreshold = 80.0
	SuggestionFailureSlack     = 10
	LabCapacityFactor          = 5
)

type SchedulerOptions struct {
	MaxAttemptsPerSession int
	SimilarityThreshold   float64
	FailureSlack          int // Failed builds tolerated beyond the requested count
	LabCapacityFactor     int // Lab rooms must seat credits times this factor
}

func DefaultSchedulerOptions() SchedulerOptions {
	return SchedulerOptions{
		MaxAttemptsPerSession: MaxAttemptsPerSession,
		SimilarityThreshold:   DefaultSimilarityThreshold,
		FailureSlack:          SuggestionFailureSlack,
		LabCapacityFactor:     LabCapacityFactor,
	}
}

// NewAutoScheduler returns a scheduler drawing every random choice from random. A nil random is replaced
// by a clock-seeded source and a nil logger by a no-op one.
func NewAutoScheduler(checker ConflictChecker, random *rand.Rand, logger *zap.Logger, options SchedulerOptions) AutoScheduler {
	if checker == nil {
		checker = NewConflictChecker(DefaultPolicyLimits())
	}
	if random == nil {
		random = NewRandom(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultSchedulerOptions()
	if options.MaxAttemptsPerSession <= 0 {
		options.MaxAttemptsPerSession = defaults.MaxAttemptsPerSession
	}
	if options.SimilarityThreshold <= 0 {
		options.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if options.FailureSlack <= 0 {
		options.FailureSlack = defaults.FailureSlack
	}
	if options.LabCapacityFactor <= 0 {
		options.LabCapacityFactor = defaults.LabCapacityFactor
	}

	return &randomizedScheduler{
		checker: checker,
		random:  random,
		logger:  logger,
		options: options,
	}
}

// NewRandom builds a generator for the given seed; a zero seed picks one from the clock
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
