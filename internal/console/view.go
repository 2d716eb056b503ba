package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Kurbalija/IU-Dashboard/internal/engine"
	"github.com/Kurbalija/IU-Dashboard/internal/model"
)

const (
	// DefaultWidth is used when the output is not a terminal.
	DefaultWidth = 80
	minWidth     = 40

	labelWidth   = 20
	codeWidth    = 15
	creditsWidth = 5
	minNameWidth = 20
	maxBarWidth  = 60
	minBarWidth  = 10
)

// view renders the overview screens onto an io.Writer.
type view struct {
	out   io.Writer
	width int
}

func newView(out io.Writer, width int) view {
	if width < minWidth {
		width = DefaultWidth
	}
	return view{out: out, width: width}
}

func (v view) rule(ch string) string { return strings.Repeat(ch, v.width) }

// center pads s on both sides to the view width.
func (v view) center(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= v.width {
		return s
	}
	left := (v.width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", v.width-n-left)
}

func (v view) header(title string) {
	fmt.Fprintf(v.out, "\n%s\n%s\n%s\n", v.rule("="), v.center(title), v.rule("="))
}

// Overview prints the student block followed by the course table.
func (v view) Overview(ov model.Overview) {
	v.Student(ov.Student, ov.Stats)
	v.Courses(ov.Courses)
}

func (v view) Student(s model.Student, stats model.Stats) {
	v.header("STUDENTEN-ÜBERSICHT")
	v.field("Name:", s.Name)
	v.field("Studiengang:", s.Program)
	v.field("Ziel-ECTS:", fmt.Sprint(s.TargetCredits))
	v.field("Erreichte ECTS:", fmt.Sprint(stats.TotalCredits))
	if stats.Average != nil {
		v.field("Notendurchschnitt:", fmt.Sprintf("%.2f", *stats.Average))
	} else {
		v.field("Notendurchschnitt:", "-")
	}
	v.Progress(stats.TotalCredits, s.TargetCredits)
	fmt.Fprintf(v.out, "%s\n\n", v.rule("="))
}

func (v view) field(label, value string) {
	fmt.Fprintf(v.out, "%s%s\n", padRight(label, labelWidth), value)
}

// Progress prints a bar of earned against target credits. Overshooting the
// target fills the bar completely while the percentage keeps counting.
func (v view) Progress(earned, target int) {
	pct, ok := engine.Progress(earned, target)
	if !ok {
		fmt.Fprintln(v.out, "Fortschritt: Keine Ziel-ECTS definiert.")
		return
	}

	bar := v.barWidth()
	filled := int(float64(bar) * pct / 100)
	if filled > bar {
		filled = bar
	}
	if filled < 0 {
		filled = 0
	}
	fmt.Fprintf(v.out, "\nFortschritt: [%s%s] %.2f%%\n\n",
		strings.Repeat("█", filled), strings.Repeat("-", bar-filled), pct)
}

func (v view) barWidth() int {
	w := v.width - 20
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < minBarWidth {
		w = minBarWidth
	}
	return w
}

func (v view) nameWidth() int {
	w := v.width - 30
	if w < minNameWidth {
		w = minNameWidth
	}
	return w
}

// Courses prints the course table.
func (v view) Courses(courses []model.Course) {
	nw := v.nameWidth()
	v.header("KURSE")
	fmt.Fprintf(v.out, "%s %s %s %s\n",
		padRight("Kurscode", codeWidth), padRight("Kursname", nw), padRight("ECTS", creditsWidth), "Note")
	fmt.Fprintln(v.out, v.rule("-"))
	for _, c := range courses {
		fmt.Fprintf(v.out, "%s %s %s %s\n",
			padRight(c.Code, codeWidth),
			padRight(truncate(c.Name, nw), nw),
			padRight(fmt.Sprint(c.Credits), creditsWidth),
			c.Grade.String())
	}
	fmt.Fprintf(v.out, "%s\n\n", v.rule("="))
}

func (v view) Success(msg string) { fmt.Fprintf(v.out, "\n[✔️] %s\n\n", msg) }

func (v view) Failure(msg string) { fmt.Fprintf(v.out, "\n[❌] %s\n\n", msg) }

// padRight pads s with spaces to n runes. Longer strings are returned as is.
func padRight(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
