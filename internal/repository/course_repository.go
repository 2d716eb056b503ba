package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

// Column names of the course file.
const (
	colCourseCode    = "Kurscode"
	colCourseName    = "Kursname"
	colCourseCredits = "ECTS"
	colCourseGrade   = "Note"
)

var courseHeader = []string{colCourseCode, colCourseName, colCourseCredits, colCourseGrade}

// creditedToken marks a credited course in the grade column.
const creditedToken = "A"

// CourseRepository reads and rewrites the course CSV file.
type CourseRepository struct {
	path string
}

func NewCourseRepository(path string) *CourseRepository {
	return &CourseRepository{path: path}
}

func (r *CourseRepository) Path() string { return r.path }

// Load reads all courses in file order.
func (r *CourseRepository) Load(ctx context.Context) ([]model.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	if err := t.require(colCourseCode, colCourseName, colCourseCredits); err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	courses := make([]model.Course, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2 // 1-based, after the header
		credits, err := strconv.Atoi(t.get(row, colCourseCredits))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid ECTS %q", r.path, line, t.get(row, colCourseCredits))
		}
		c, err := model.NewCourse(
			t.get(row, colCourseCode),
			t.get(row, colCourseName),
			credits,
			decodeGrade(t.get(row, colCourseGrade)),
		)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.path, line, err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// Save rewrites the whole file.
func (r *CourseRepository) Save(ctx context.Context, courses []model.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{c.Code, c.Name, strconv.Itoa(c.Credits), encodeGrade(c.Grade)})
	}
	return writeTable(r.path, courseHeader, rows)
}

// decodeGrade maps the grade column onto a Grade. Text that is not a number is
// read as ungraded; a stored 0 is the legacy spelling of a credited course.
func decodeGrade(s string) model.Grade {
	if s == "" {
		return model.NoGrade()
	}
	if strings.EqualFold(s, creditedToken) {
		return model.CreditedGrade()
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return model.NoGrade()
	}
	if v == 0 {
		return model.CreditedGrade()
	}
	return model.NumericGrade(v)
}

func encodeGrade(g model.Grade) string {
	switch g.Status() {
	case model.GradeCredited:
		return creditedToken
	case model.GradeGraded:
		v, _ := g.Value()
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return ""
	}
}
