package model

import "strings"

// Student is the owner of the course list. There is exactly one per data set.
type Student struct {
	Name    string `json:"name"`
	Program string `json:"program"`
	// TargetCredits of 0 means no target has been defined.
	TargetCredits int `json:"target_credits"`
}

// NewStudent builds a Student, trimming the text fields.
func NewStudent(name, program string, targetCredits int) (Student, error) {
	if targetCredits < 0 {
		return Student{}, ErrNegativeTarget
	}
	return Student{
		Name:          strings.TrimSpace(name),
		Program:       strings.TrimSpace(program),
		TargetCredits: targetCredits,
	}, nil
}

// HasTarget reports whether a progress percentage can be computed.
func (s Student) HasTarget() bool { return s.TargetCredits > 0 }

// UpdateStudentRequest is the payload for updating the student profile.
type UpdateStudentRequest struct {
	Name          string `json:"name"`
	Program       string `json:"program"`
	TargetCredits *int   `json:"target_credits" binding:"required,min=0"`
}
