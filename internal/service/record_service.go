package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Kurbalija/IU-Dashboard/internal/engine"
	"github.com/Kurbalija/IU-Dashboard/internal/model"
	"github.com/Kurbalija/IU-Dashboard/internal/repository"
)

// CourseStore persists the course list.
type CourseStore interface {
	Load(ctx context.Context) ([]model.Course, error)
	Save(ctx context.Context, courses []model.Course) error
}

// StudentStore persists the student profile.
type StudentStore interface {
	Load(ctx context.Context) (model.Student, error)
	Save(ctx context.Context, s model.Student) error
}

// RecordService owns the in-memory record. Presentation layers read snapshots
// and request mutations; every successful mutation is written back in full
// before it becomes visible.
type RecordService struct {
	mu           sync.RWMutex
	courses      []model.Course
	student      model.Student
	courseStore  CourseStore
	studentStore StudentStore
	log          zerolog.Logger
}

// NewRecordService creates a RecordService. Call Load before use.
func NewRecordService(courseStore CourseStore, studentStore StudentStore, log zerolog.Logger) *RecordService {
	return &RecordService{
		courseStore:  courseStore,
		studentStore: studentStore,
		log:          log.With().Str("component", "record_service").Logger(),
	}
}

// Load replaces the in-memory record with the contents of both stores.
// A student file without a record yields an empty profile.
func (s *RecordService) Load(ctx context.Context) error {
	student, err := s.studentStore.Load(ctx)
	if errors.Is(err, repository.ErrNoStudent) {
		s.log.Warn().Msg("student file has no record, starting with an empty profile")
		err = nil
	}
	if err != nil {
		return fmt.Errorf("load student: %w", err)
	}

	courses, err := s.courseStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("load courses: %w", err)
	}
	for _, code := range engine.DuplicateCodes(courses) {
		s.log.Warn().Str("code", code).Msg("duplicate course code, edits apply to the first occurrence")
	}

	s.mu.Lock()
	s.student = student
	s.courses = courses
	s.mu.Unlock()

	s.log.Info().Int("courses", len(courses)).Str("student", student.Name).Msg("record loaded")
	return nil
}

// Snapshot returns a copy of the record together with its statistics.
func (s *RecordService) Snapshot() model.Overview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := cloneCourses(s.courses)
	return model.Overview{
		Student: s.student,
		Courses: courses,
		Stats:   engine.ComputeOverviewStats(s.student, courses),
	}
}

// Stats returns total credits and the weighted average.
func (s *RecordService) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.ComputeStats(s.courses)
}

// GetCourse returns the first course with the given code.
func (s *RecordService) GetCourse(code string) (model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := engine.FindCourse(s.courses, code)
	if i < 0 {
		return model.Course{}, engine.ErrCourseNotFound
	}
	return s.courses[i], nil
}

// ApplyGrade sets the grade of a course from raw user input.
func (s *RecordService) ApplyGrade(ctx context.Context, code, raw string) error {
	return s.mutateCourses(ctx, "apply_grade", code, func(courses []model.Course) error {
		return engine.SetGrade(courses, code, raw)
	})
}

// ApplyCreditChange sets the credit points of a course from raw user input.
func (s *RecordService) ApplyCreditChange(ctx context.Context, code, raw string) error {
	return s.mutateCourses(ctx, "apply_credit_change", code, func(courses []model.Course) error {
		return engine.SetCredits(courses, code, raw)
	})
}

// RenameCourse changes the display name of a course.
func (s *RecordService) RenameCourse(ctx context.Context, code, name string) error {
	return s.mutateCourses(ctx, "rename_course", code, func(courses []model.Course) error {
		return engine.RenameCourse(courses, code, name)
	})
}

// ChangeCourseCode re-keys a course.
func (s *RecordService) ChangeCourseCode(ctx context.Context, oldCode, newCode string) error {
	return s.mutateCourses(ctx, "change_course_code", oldCode, func(courses []model.Course) error {
		return engine.ChangeCourseCode(courses, oldCode, newCode)
	})
}

// UpdateStudent overwrites the student profile.
func (s *RecordService) UpdateStudent(ctx context.Context, name, program string, targetCredits int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.student
	if err := engine.UpdateStudent(&working, name, program, targetCredits); err != nil {
		return err
	}
	if err := s.studentStore.Save(ctx, working); err != nil {
		s.log.Error().Err(err).Msg("failed to save student")
		return fmt.Errorf("save student: %w", err)
	}
	s.student = working

	s.log.Debug().Str("name", working.Name).Int("target_credits", working.TargetCredits).Msg("student updated")
	return nil
}

// mutateCourses runs fn on a copy of the course list, persists the copy and
// only then swaps it in, so memory and disk never disagree.
func (s *RecordService) mutateCourses(ctx context.Context, op, code string, fn func([]model.Course) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := cloneCourses(s.courses)
	if err := fn(working); err != nil {
		s.log.Debug().Err(err).Str("op", op).Str("code", code).Msg("mutation rejected")
		return err
	}
	if err := s.courseStore.Save(ctx, working); err != nil {
		s.log.Error().Err(err).Str("op", op).Str("code", code).Msg("failed to save courses")
		return fmt.Errorf("save courses: %w", err)
	}
	s.courses = working

	s.log.Debug().Str("op", op).Str("code", code).Msg("courses updated")
	return nil
}

func cloneCourses(courses []model.Course) []model.Course {
	out := make([]model.Course, len(courses))
	copy(out, courses)
	return out
}
