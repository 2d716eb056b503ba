package model

import (
	"encoding/json"
	"strconv"
)

// GradeStatus tells whether a course carries no grade, a credit without
// numeric grade, or a numeric grade.
type GradeStatus string

const (
	GradeUngraded GradeStatus = "ungraded"
	GradeCredited GradeStatus = "credited"
	GradeGraded   GradeStatus = "graded"
)

// Grading scale bounds, both inclusive.
const (
	MinGrade = 1.0
	MaxGrade = 5.0
)

// Grade is a tagged course grade. The zero value is ungraded.
type Grade struct {
	status GradeStatus
	value  float64
}

// NoGrade returns an ungraded Grade.
func NoGrade() Grade { return Grade{} }

// CreditedGrade returns the grade of a course that was credited ("angerechnet")
// without a numeric grade.
func CreditedGrade() Grade { return Grade{status: GradeCredited} }

// NumericGrade returns a numeric grade. The caller is responsible for range
// checking and rounding.
func NumericGrade(v float64) Grade { return Grade{status: GradeGraded, value: v} }

func (g Grade) Status() GradeStatus {
	if g.status == "" {
		return GradeUngraded
	}
	return g.status
}

// Value returns the numeric grade and true, or 0 and false for ungraded and
// credited courses.
func (g Grade) Value() (float64, bool) {
	if g.status != GradeGraded {
		return 0, false
	}
	return g.value, true
}

// Present reports whether the course counts as completed (credited or graded).
func (g Grade) Present() bool { return g.Status() != GradeUngraded }

// Numeric reports whether the grade takes part in the weighted average.
func (g Grade) Numeric() bool { return g.status == GradeGraded }

// String renders the grade the way the course table shows it.
func (g Grade) String() string {
	switch g.Status() {
	case GradeCredited:
		return "A"
	case GradeGraded:
		return strconv.FormatFloat(g.value, 'f', 2, 64)
	default:
		return "-"
	}
}

type gradeJSON struct {
	Status GradeStatus `json:"status"`
	Value  *float64    `json:"value,omitempty"`
}

func (g Grade) MarshalJSON() ([]byte, error) {
	out := gradeJSON{Status: g.Status()}
	if v, ok := g.Value(); ok {
		out.Value = &v
	}
	return json.Marshal(out)
}
