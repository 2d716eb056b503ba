// Package export renders a record snapshot as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

const (
	CoursesSheet  = "Kurse"
	OverviewSheet = "Übersicht"
)

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var courseHeader = []interface{}{"Kurscode", "Kursname", "ECTS", "Note"}

// WriteWorkbook writes ov as an .xlsx file with a course sheet and an
// overview sheet.
func WriteWorkbook(w io.Writer, ov model.Overview) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CoursesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := writeCourses(f, ov.Courses, bold); err != nil {
		return err
	}
	if err := writeOverview(f, ov, bold); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeCourses(f *excelize.File, courses []model.Course, bold int) error {
	if err := f.SetSheetRow(CoursesSheet, "A1", &courseHeader); err != nil {
		return fmt.Errorf("write course header: %w", err)
	}
	if err := f.SetCellStyle(CoursesSheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("style course header: %w", err)
	}

	for i, c := range courses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{c.Code, c.Name, c.Credits, gradeCell(c.Grade)}
		if err := f.SetSheetRow(CoursesSheet, cell, &row); err != nil {
			return fmt.Errorf("write course %q: %w", c.Code, err)
		}
	}

	_ = f.SetColWidth(CoursesSheet, "A", "A", 14)
	_ = f.SetColWidth(CoursesSheet, "B", "B", 48)
	return nil
}

func writeOverview(f *excelize.File, ov model.Overview, bold int) error {
	if _, err := f.NewSheet(OverviewSheet); err != nil {
		return fmt.Errorf("create overview sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Name", ov.Student.Name},
		{"Studiengang", ov.Student.Program},
		{"Ziel-ECTS", ov.Student.TargetCredits},
		{"ECTS gesamt", ov.Stats.TotalCredits},
		{"Notendurchschnitt", optional(ov.Stats.Average)},
		{"Fortschritt (%)", optional(ov.Stats.ProgressPercent)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(OverviewSheet, cell, &row); err != nil {
			return fmt.Errorf("write overview row %d: %w", i+1, err)
		}
	}
	if err := f.SetCellStyle(OverviewSheet, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return fmt.Errorf("style overview labels: %w", err)
	}
	_ = f.SetColWidth(OverviewSheet, "A", "A", 20)
	_ = f.SetColWidth(OverviewSheet, "B", "B", 36)
	return nil
}

// gradeCell keeps numeric grades numeric so spreadsheet formulas still work.
func gradeCell(g model.Grade) interface{} {
	switch g.Status() {
	case model.GradeGraded:
		v, _ := g.Value()
		return v
	case model.GradeCredited:
		return "A"
	default:
		return ""
	}
}

// optional writes v rounded to two decimals, or "-" when it is undefined.
func optional(v *float64) interface{} {
	if v == nil {
		return "-"
	}
	return math.Round(*v*100) / 100
}
