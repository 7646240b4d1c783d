package model

import "github.com/samber/lo"

// Similarity is the percentage of entries shared (by structural equality) by both schedules, relative to
// the smaller one. Empty schedules are not similar to anything.
func Similarity(schedule1, schedule2 *Schedule) float64 {
	smaller, larger := schedule1, schedule2
	if larger.Len() < smaller.Len() {
		smaller, larger = larger, smaller
	}
	if smaller.Len() == 0 {
		return 0
	}

	matches := lo.CountBy(smaller.entries, larger.Contains)
	return float64(matches) * 100 / float64(smaller.Len())
}

// tooSimilar checks whether the candidate exceeds the threshold against any of the accepted schedules
func tooSimilar(accepted []*Schedule, candidate *Schedule, threshold float64) bool {
	return lo.SomeBy(accepted, func(schedule *Schedule) bool {
		return Similarity(schedule, candidate) > threshold
	})
}
