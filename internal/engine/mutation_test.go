package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

func sampleCourses() []model.Course {
	return []model.Course{
		course("MAT01", 5, model.NumericGrade(2.0)),
		course("PROG01", 6, model.NoGrade()),
		course("DB01", 7, model.CreditedGrade()),
	}
}

func TestParseGradeInput(t *testing.T) {
	tests := []struct {
		raw     string
		want    model.Grade
		wantErr error
	}{
		{raw: "", want: model.NoGrade()},
		{raw: "   ", want: model.NoGrade()},
		{raw: "-", want: model.NoGrade()},
		{raw: " - ", want: model.NoGrade()},
		{raw: "A", want: model.CreditedGrade()},
		{raw: "a", want: model.CreditedGrade()},
		{raw: " a ", want: model.CreditedGrade()},
		{raw: "1", want: model.NumericGrade(1.0)},
		{raw: "5.0", want: model.NumericGrade(5.0)},
		{raw: "2.3", want: model.NumericGrade(2.3)},
		{raw: "2,7", want: model.NumericGrade(2.7)},
		{raw: "1.234", want: model.NumericGrade(1.23)},
		{raw: "5.5", wantErr: ErrRange},
		{raw: "0.9", wantErr: ErrRange},
		{raw: "0", wantErr: ErrRange},
		{raw: "-1", wantErr: ErrRange},
		{raw: "foo", wantErr: ErrParse},
		{raw: "AA", wantErr: ErrParse},
		{raw: "nan", wantErr: ErrParse},
		{raw: "inf", wantErr: ErrParse},
		{raw: "0x1p1", wantErr: ErrParse},
		{raw: "0X2", wantErr: ErrParse},
		{raw: "2.5.1", wantErr: ErrParse},
		{raw: "2e0", want: model.NumericGrade(2.0)},
		{raw: "6e0", wantErr: ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseGradeInput(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Status(), got.Status())
			wantV, _ := tt.want.Value()
			gotV, _ := got.Value()
			assert.InDelta(t, wantV, gotV, 1e-9)
		})
	}
}

func TestSetGrade(t *testing.T) {
	t.Run("clear resets any prior grade", func(t *testing.T) {
		for _, raw := range []string{"", "-"} {
			courses := sampleCourses()
			require.NoError(t, SetGrade(courses, "MAT01", raw))
			require.NoError(t, SetGrade(courses, "DB01", raw))
			assert.Equal(t, model.GradeUngraded, courses[0].Grade.Status())
			assert.Equal(t, model.GradeUngraded, courses[2].Grade.Status())
		}
	})

	t.Run("credited token", func(t *testing.T) {
		courses := sampleCourses()
		require.NoError(t, SetGrade(courses, "PROG01", " a "))
		assert.Equal(t, model.GradeCredited, courses[1].Grade.Status())
	})

	t.Run("upper bound accepted", func(t *testing.T) {
		courses := sampleCourses()
		require.NoError(t, SetGrade(courses, "PROG01", "5.0"))
		v, ok := courses[1].Grade.Value()
		require.True(t, ok)
		assert.InDelta(t, 5.0, v, 1e-9)
	})

	t.Run("rejected input leaves grade unchanged", func(t *testing.T) {
		courses := sampleCourses()
		assert.ErrorIs(t, SetGrade(courses, "MAT01", "5.5"), ErrRange)
		assert.ErrorIs(t, SetGrade(courses, "MAT01", "foo"), ErrParse)
		assert.Equal(t, sampleCourses(), courses)
	})

	t.Run("unknown code mutates nothing", func(t *testing.T) {
		courses := sampleCourses()
		assert.ErrorIs(t, SetGrade(courses, "NOPE", "2.0"), ErrCourseNotFound)
		assert.Equal(t, sampleCourses(), courses)
	})

	t.Run("first match wins on duplicate codes", func(t *testing.T) {
		courses := append(sampleCourses(), course("MAT01", 5, model.NoGrade()))
		require.NoError(t, SetGrade(courses, "MAT01", "1.3"))
		v, _ := courses[0].Grade.Value()
		assert.InDelta(t, 1.3, v, 1e-9)
		assert.Equal(t, model.GradeUngraded, courses[3].Grade.Status())
	})
}

func TestParseCredits(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr error
	}{
		{raw: "6", want: 6},
		{raw: " 10 ", want: 10},
		{raw: "0", want: 0},
		{raw: "6.5", wantErr: ErrRange},
		{raw: "6,5", wantErr: ErrRange},
		{raw: "-1", wantErr: ErrRange},
		{raw: "sechs", wantErr: ErrParse},
		{raw: "", wantErr: ErrParse},
		{raw: "0x1p4", wantErr: ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCredits(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetCredits(t *testing.T) {
	courses := sampleCourses()
	require.NoError(t, SetCredits(courses, "PROG01", "10"))
	assert.Equal(t, 10, courses[1].Credits)

	assert.ErrorIs(t, SetCredits(courses, "PROG01", "2.5"), ErrRange)
	assert.ErrorIs(t, SetCredits(courses, "PROG01", "x"), ErrParse)
	assert.Equal(t, 10, courses[1].Credits)

	assert.ErrorIs(t, SetCredits(courses, "NOPE", "3"), ErrCourseNotFound)
}

func TestRenameCourse(t *testing.T) {
	courses := sampleCourses()
	require.NoError(t, RenameCourse(courses, "MAT01", "  Mathematik I  "))
	assert.Equal(t, "Mathematik I", courses[0].Name)

	assert.ErrorIs(t, RenameCourse(courses, "MAT01", "   "), ErrEmptyField)
	assert.Equal(t, "Mathematik I", courses[0].Name)

	assert.ErrorIs(t, RenameCourse(courses, "NOPE", "x"), ErrCourseNotFound)
}

func TestChangeCourseCode(t *testing.T) {
	t.Run("renames", func(t *testing.T) {
		courses := sampleCourses()
		require.NoError(t, ChangeCourseCode(courses, "MAT01", " MAT02 "))
		assert.Equal(t, "MAT02", courses[0].Code)
		assert.Equal(t, -1, FindCourse(courses, "MAT01"))
	})

	t.Run("collision rejected", func(t *testing.T) {
		courses := sampleCourses()
		assert.ErrorIs(t, ChangeCourseCode(courses, "MAT01", "DB01"), ErrDuplicateCode)
		assert.Equal(t, sampleCourses(), courses)
	})

	t.Run("same code is a no-op", func(t *testing.T) {
		courses := sampleCourses()
		require.NoError(t, ChangeCourseCode(courses, "MAT01", "MAT01"))
		assert.Equal(t, sampleCourses(), courses)
	})

	t.Run("empty code rejected", func(t *testing.T) {
		courses := sampleCourses()
		assert.ErrorIs(t, ChangeCourseCode(courses, "MAT01", " "), ErrEmptyField)
	})

	t.Run("unknown code", func(t *testing.T) {
		assert.ErrorIs(t, ChangeCourseCode(sampleCourses(), "NOPE", "X"), ErrCourseNotFound)
	})
}

func TestUpdateStudent(t *testing.T) {
	s := model.Student{Name: "Old", Program: "BWL", TargetCredits: 90}

	require.NoError(t, UpdateStudent(&s, " Erika Mustermann ", "Informatik", 180))
	assert.Equal(t, model.Student{Name: "Erika Mustermann", Program: "Informatik", TargetCredits: 180}, s)

	assert.ErrorIs(t, UpdateStudent(&s, "X", "Y", -5), ErrRange)
	assert.Equal(t, 180, s.TargetCredits)
	assert.Equal(t, "Erika Mustermann", s.Name)
}

func TestDuplicateCodes(t *testing.T) {
	courses := []model.Course{
		course("A", 1, model.NoGrade()),
		course("B", 1, model.NoGrade()),
		course("A", 1, model.NoGrade()),
		course("A", 1, model.NoGrade()),
		course("B", 1, model.NoGrade()),
	}
	assert.Equal(t, []string{"A", "B"}, DuplicateCodes(courses))
	assert.Empty(t, DuplicateCodes(sampleCourses()))
}
