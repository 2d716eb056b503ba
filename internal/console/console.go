// Package console implements the interactive text front end: it prints the
// overview, asks for a course code and a new value, and applies the change
// through the record service.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Kurbalija/IU-Dashboard/internal/engine"
	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

// Records is the subset of the record service the console drives.
type Records interface {
	Snapshot() model.Overview
	ApplyGrade(ctx context.Context, code, raw string) error
	ApplyCreditChange(ctx context.Context, code, raw string) error
	RenameCourse(ctx context.Context, code, name string) error
	ChangeCourseCode(ctx context.Context, oldCode, newCode string) error
	UpdateStudent(ctx context.Context, name, program string, targetCredits int) error
}

// Console is a prompt loop over a Records instance.
type Console struct {
	records Records
	in      *bufio.Reader
	view    view
	log     zerolog.Logger
}

// field identifies what a course edit changes.
type field int

const (
	fieldGrade field = iota
	fieldCredits
	fieldName
	fieldCode
)

// New creates a Console reading from in and printing to out. width is the
// terminal width; values below a usable minimum fall back to DefaultWidth.
func New(records Records, in io.Reader, out io.Writer, width int, log zerolog.Logger) *Console {
	return &Console{
		records: records,
		in:      bufio.NewReader(in),
		view:    newView(out, width),
		log:     log.With().Str("component", "console").Logger(),
	}
}

// Run loops until the user quits, the input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	defer c.view.Success("Anwendung beendet.")

	for {
		if ctx.Err() != nil {
			return nil
		}
		c.view.Overview(c.records.Snapshot())

		input, err := c.prompt("Gib den Kurscode ein ('s' Studentendaten, 'q' zum Beenden): ")
		if err != nil {
			return eofIsQuit(err)
		}

		switch strings.ToLower(input) {
		case "q":
			return nil
		case "s":
			err = c.editStudent(ctx)
		case "":
			continue
		default:
			err = c.editCourse(ctx, input)
		}
		if err != nil {
			return eofIsQuit(err)
		}
	}
}

func (c *Console) editCourse(ctx context.Context, code string) error {
	if engine.FindCourse(c.records.Snapshot().Courses, code) < 0 {
		c.view.Failure("Ungültiger Kurscode!")
		return nil
	}

	choice, err := c.prompt("Was möchtest du ändern? [Enter] Note, (e) ECTS, (n) Kursname, (c) Kurscode: ")
	if err != nil {
		return err
	}
	f, ok := parseField(choice)
	if !ok {
		c.view.Failure("Ungültige Auswahl!")
		return nil
	}

	switch f {
	case fieldCredits:
		raw, err := c.prompt("Gib die neuen ECTS ein: ")
		if err != nil {
			return err
		}
		c.report(f, c.records.ApplyCreditChange(ctx, code, raw), "ECTS erfolgreich gespeichert!")
	case fieldName:
		raw, err := c.prompt("Gib den neuen Kursnamen ein: ")
		if err != nil {
			return err
		}
		c.report(f, c.records.RenameCourse(ctx, code, raw), "Kursname erfolgreich gespeichert!")
	case fieldCode:
		raw, err := c.prompt("Gib den neuen Kurscode ein: ")
		if err != nil {
			return err
		}
		c.report(f, c.records.ChangeCourseCode(ctx, code, raw), "Kurscode erfolgreich gespeichert!")
	default:
		raw, err := c.prompt("Gib die neue Note ein (1,0 bis 5,0, 'A' für angerechnet, '-' für keine): ")
		if err != nil {
			return err
		}
		c.report(f, c.records.ApplyGrade(ctx, code, raw), "Note erfolgreich gespeichert!")
	}
	return nil
}

// editStudent asks for each profile field; an empty answer keeps the
// current value.
func (c *Console) editStudent(ctx context.Context) error {
	current := c.records.Snapshot().Student

	name, err := c.prompt("Name [" + current.Name + "]: ")
	if err != nil {
		return err
	}
	program, err := c.prompt("Studiengang [" + current.Program + "]: ")
	if err != nil {
		return err
	}
	rawTarget, err := c.prompt("Ziel-ECTS [" + strconv.Itoa(current.TargetCredits) + "]: ")
	if err != nil {
		return err
	}

	if name == "" {
		name = current.Name
	}
	if program == "" {
		program = current.Program
	}
	target := current.TargetCredits
	if rawTarget != "" {
		target, err = engine.ParseCredits(rawTarget)
		if err != nil {
			c.view.Failure("Ziel-ECTS müssen eine ganze Zahl ab 0 sein!")
			return nil
		}
	}

	if err := c.records.UpdateStudent(ctx, name, program, target); err != nil {
		c.fail(err, "Ziel-ECTS müssen eine ganze Zahl ab 0 sein!")
		return nil
	}
	c.view.Success("Studentendaten erfolgreich gespeichert!")
	return nil
}

func (c *Console) report(f field, err error, okMsg string) {
	if err == nil {
		c.view.Success(okMsg)
		return
	}
	switch f {
	case fieldGrade:
		if errors.Is(err, engine.ErrParse) {
			c.view.Failure("Ungültige Eingabe für die Note!")
			return
		}
		c.fail(err, "Die Note muss zwischen 1,0 und 5,0 liegen!")
	case fieldCredits:
		if errors.Is(err, engine.ErrParse) {
			c.view.Failure("Ungültige Eingabe für die ECTS!")
			return
		}
		c.fail(err, "ECTS müssen eine ganze Zahl ab 0 sein!")
	default:
		c.fail(err, "")
	}
}

// fail prints the message for err. rangeMsg is shown for engine.ErrRange.
func (c *Console) fail(err error, rangeMsg string) {
	switch {
	case errors.Is(err, engine.ErrRange) && rangeMsg != "":
		c.view.Failure(rangeMsg)
	case errors.Is(err, engine.ErrCourseNotFound):
		c.view.Failure("Ungültiger Kurscode!")
	case errors.Is(err, engine.ErrDuplicateCode):
		c.view.Failure("Dieser Kurscode ist bereits vergeben!")
	case errors.Is(err, engine.ErrEmptyField):
		c.view.Failure("Das Feld darf nicht leer sein!")
	default:
		c.log.Error().Err(err).Msg("change could not be saved")
		c.view.Failure("Speichern fehlgeschlagen, die Änderung wurde verworfen.")
	}
}

// prompt prints label and returns the trimmed answer. A final line without
// newline is still returned; io.EOF is reported only once nothing is left.
func (c *Console) prompt(label string) (string, error) {
	_, _ = io.WriteString(c.view.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func parseField(choice string) (field, bool) {
	switch strings.ToLower(choice) {
	case "", "note":
		return fieldGrade, true
	case "e", "ects":
		return fieldCredits, true
	case "n", "name":
		return fieldName, true
	case "c", "code":
		return fieldCode, true
	default:
		return 0, false
	}
}

func eofIsQuit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
