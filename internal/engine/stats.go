// Package engine holds the statistics and mutation logic of the course record.
// All functions are pure apart from mutating the slice or struct they are
// given; persistence is left to the caller.
package engine

import (
	"math"

	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

// TotalCredits sums the credits of every course that has been completed,
// credited courses included.
func TotalCredits(courses []model.Course) int {
	total := 0
	for _, c := range courses {
		if c.Grade.Present() {
			total += c.Credits
		}
	}
	return total
}

// WeightedAverage returns the credit-weighted mean over courses with a numeric
// grade, rounded to two decimals. ok is false when no such course exists.
func WeightedAverage(courses []model.Course) (avg float64, ok bool) {
	var weighted float64
	credits := 0
	for _, c := range courses {
		g, graded := c.Grade.Value()
		if !graded {
			continue
		}
		weighted += g * float64(c.Credits)
		credits += c.Credits
	}
	if credits == 0 {
		return 0, false
	}
	return round2(weighted / float64(credits)), true
}

// Progress returns earned/target as a percentage. ok is false when no target
// is defined.
func Progress(earned, target int) (pct float64, ok bool) {
	if target <= 0 {
		return 0, false
	}
	return float64(earned) / float64(target) * 100, true
}

// ComputeStats derives total credits and the weighted average.
func ComputeStats(courses []model.Course) model.Stats {
	stats := model.Stats{TotalCredits: TotalCredits(courses)}
	if avg, ok := WeightedAverage(courses); ok {
		stats.Average = &avg
	}
	return stats
}

// ComputeOverviewStats extends ComputeStats with the progress towards the
// student's target.
func ComputeOverviewStats(student model.Student, courses []model.Course) model.Stats {
	stats := ComputeStats(courses)
	if pct, ok := Progress(stats.TotalCredits, student.TargetCredits); ok {
		stats.ProgressPercent = &pct
	}
	return stats
}

// round2 rounds half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
