package model

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCourseCode = errors.New("course code must not be empty")
	ErrNegativeCredits = errors.New("credits must not be negative")
	ErrNegativeTarget  = errors.New("target credits must not be negative")
)

// Course is a single module of the study program.
type Course struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	Grade   Grade  `json:"grade"`
}

// NewCourse builds a Course, trimming the text fields.
func NewCourse(code, name string, credits int, grade Grade) (Course, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Course{}, ErrEmptyCourseCode
	}
	if credits < 0 {
		return Course{}, ErrNegativeCredits
	}
	return Course{
		Code:    code,
		Name:    strings.TrimSpace(name),
		Credits: credits,
		Grade:   grade,
	}, nil
}

// RenameCourseRequest is the payload for changing a course's display name.
type RenameCourseRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// ChangeCourseCodeRequest is the payload for changing a course's code.
type ChangeCourseCodeRequest struct {
	Code string `json:"code" binding:"required,notblank"`
}

// UpdateGradeRequest carries the raw grade text: "" or "-" clears the grade,
// "A" marks the course as credited, anything else must be a number in [1, 5].
type UpdateGradeRequest struct {
	Grade *string `json:"grade" binding:"required"`
}

// UpdateCreditsRequest carries the raw credit text, which must be a
// non-negative integer.
type UpdateCreditsRequest struct {
	Credits string `json:"credits" binding:"required"`
}
