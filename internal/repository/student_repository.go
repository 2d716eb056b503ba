package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

// ErrNoStudent is returned when the student file holds a header but no record.
var ErrNoStudent = errors.New("student file contains no record")

const (
	colStudentName    = "Name"
	colStudentProgram = "Studiengang"
	colStudentTarget  = "Ziel-ECTS"
)

var studentHeader = []string{colStudentName, colStudentProgram, colStudentTarget}

// StudentRepository reads and rewrites the single-row student CSV file.
type StudentRepository struct {
	path string
}

func NewStudentRepository(path string) *StudentRepository {
	return &StudentRepository{path: path}
}

func (r *StudentRepository) Path() string { return r.path }

// Load returns the first record of the file.
func (r *StudentRepository) Load(ctx context.Context) (model.Student, error) {
	if err := ctx.Err(); err != nil {
		return model.Student{}, err
	}

	t, err := readTable(r.path)
	if err != nil {
		return model.Student{}, err
	}
	if err := t.require(colStudentName, colStudentProgram, colStudentTarget); err != nil {
		return model.Student{}, fmt.Errorf("%s: %w", r.path, err)
	}
	if len(t.rows) == 0 {
		return model.Student{}, ErrNoStudent
	}

	row := t.rows[0]
	target := 0
	if raw := t.get(row, colStudentTarget); raw != "" {
		if target, err = strconv.Atoi(raw); err != nil {
			return model.Student{}, fmt.Errorf("%s line 2: invalid Ziel-ECTS %q", r.path, raw)
		}
	}

	s, err := model.NewStudent(t.get(row, colStudentName), t.get(row, colStudentProgram), target)
	if err != nil {
		return model.Student{}, fmt.Errorf("%s line 2: %w", r.path, err)
	}
	return s, nil
}

// Save overwrites the file with the given student.
func (r *StudentRepository) Save(ctx context.Context, s model.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeTable(r.path, studentHeader, [][]string{
		{s.Name, s.Program, strconv.Itoa(s.TargetCredits)},
	})
}
