package engine

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

var (
	// ErrParse is returned for input that is neither a recognised token nor a number.
	ErrParse = errors.New("input is not a valid number")
	// ErrRange is returned for numbers outside the permitted range and for
	// credit values that are not whole numbers.
	ErrRange = errors.New("value is out of the permitted range")

	ErrCourseNotFound = errors.New("course not found")
	ErrDuplicateCode  = errors.New("a course with this code already exists")
	ErrEmptyField     = errors.New("field must not be empty")
)

// Input tokens recognised by ParseGradeInput, compared after upper-casing.
const (
	tokenClear    = "-"
	tokenCredited = "A"
)

// decimalNumber is plain decimal notation with an optional exponent. Go-only
// forms such as hex floats or "inf" do not match.
var decimalNumber = regexp.MustCompile(`^[+-]?([0-9]+([.,][0-9]*)?|[.,][0-9]+)([eE][+-]?[0-9]+)?$`)

// parseDecimal parses txt as a decimal number, accepting a comma separator.
func parseDecimal(txt string) (float64, bool) {
	if !decimalNumber.MatchString(txt) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(txt, ",", ".", 1), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseGradeInput turns user input into a Grade:
//
//	"" or "-"     ungraded
//	"A" / "a"     credited without numeric grade
//	"1.0"-"5.0"   numeric grade, rounded to two decimals
//
// A comma is accepted as decimal separator.
func ParseGradeInput(raw string) (model.Grade, error) {
	txt := strings.ToUpper(strings.TrimSpace(raw))
	switch txt {
	case "", tokenClear:
		return model.NoGrade(), nil
	case tokenCredited:
		return model.CreditedGrade(), nil
	}

	v, ok := parseDecimal(txt)
	if !ok {
		return model.Grade{}, ErrParse
	}
	if v < model.MinGrade || v > model.MaxGrade {
		return model.Grade{}, ErrRange
	}
	return model.NumericGrade(round2(v)), nil
}

// ParseCredits parses a non-negative whole number of credit points.
func ParseCredits(raw string) (int, error) {
	txt := strings.TrimSpace(raw)
	n, err := strconv.Atoi(txt)
	if err != nil {
		// A decimal like "6.5" is a number, just not an admissible one.
		if _, ok := parseDecimal(txt); ok {
			return 0, ErrRange
		}
		return 0, ErrParse
	}
	if n < 0 {
		return 0, ErrRange
	}
	return n, nil
}

// FindCourse returns the index of the first course with the given code, or -1.
func FindCourse(courses []model.Course, code string) int {
	code = strings.TrimSpace(code)
	for i := range courses {
		if courses[i].Code == code {
			return i
		}
	}
	return -1
}

// DuplicateCodes lists every code that occurs more than once, in order of
// first appearance.
func DuplicateCodes(courses []model.Course) []string {
	seen := make(map[string]int, len(courses))
	var dups []string
	for _, c := range courses {
		seen[c.Code]++
		if seen[c.Code] == 2 {
			dups = append(dups, c.Code)
		}
	}
	return dups
}

// SetGrade parses raw and stores it on the course with the given code. On any
// error the course is left unchanged.
func SetGrade(courses []model.Course, code, raw string) error {
	i := FindCourse(courses, code)
	if i < 0 {
		return ErrCourseNotFound
	}
	g, err := ParseGradeInput(raw)
	if err != nil {
		return err
	}
	courses[i].Grade = g
	return nil
}

// SetCredits parses raw as whole credit points and stores it on the course.
func SetCredits(courses []model.Course, code, raw string) error {
	i := FindCourse(courses, code)
	if i < 0 {
		return ErrCourseNotFound
	}
	n, err := ParseCredits(raw)
	if err != nil {
		return err
	}
	courses[i].Credits = n
	return nil
}

// RenameCourse changes the display name of a course.
func RenameCourse(courses []model.Course, code, name string) error {
	i := FindCourse(courses, code)
	if i < 0 {
		return ErrCourseNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyField
	}
	courses[i].Name = name
	return nil
}

// ChangeCourseCode re-keys a course. The new code must not belong to any
// other course.
func ChangeCourseCode(courses []model.Course, oldCode, newCode string) error {
	i := FindCourse(courses, oldCode)
	if i < 0 {
		return ErrCourseNotFound
	}
	newCode = strings.TrimSpace(newCode)
	if newCode == "" {
		return ErrEmptyField
	}
	if newCode == courses[i].Code {
		return nil
	}
	if FindCourse(courses, newCode) >= 0 {
		return ErrDuplicateCode
	}
	courses[i].Code = newCode
	return nil
}

// UpdateStudent overwrites the student profile.
func UpdateStudent(student *model.Student, name, program string, targetCredits int) error {
	updated, err := model.NewStudent(name, program, targetCredits)
	if err != nil {
		return ErrRange
	}
	*student = updated
	return nil
}
