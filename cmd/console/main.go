package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/Kurbalija/IU-Dashboard/internal/config"
	"github.com/Kurbalija/IU-Dashboard/internal/console"
	"github.com/Kurbalija/IU-Dashboard/internal/logger"
	"github.com/Kurbalija/IU-Dashboard/internal/repository"
	"github.com/Kurbalija/IU-Dashboard/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	// Logs go to stderr so they stay out of the prompt.
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	// SIGINT keeps its default behaviour.
	ctx := context.Background()

	// ─── Load Record ───────────────────────────────────────────────────
	records := service.NewRecordService(
		repository.NewCourseRepository(cfg.CoursesPath),
		repository.NewStudentRepository(cfg.StudentPath),
		log,
	)
	if err := records.Load(ctx); err != nil {
		ev := log.Fatal().Err(err).
			Str("courses", cfg.CoursesPath).
			Str("student", cfg.StudentPath)
		if errors.Is(err, fs.ErrNotExist) {
			ev = ev.Str("hint", "run init-data to create the data files")
		}
		ev.Msg("Failed to load record")
	}

	// ─── Run Prompt Loop ───────────────────────────────────────────────
	c := console.New(records, os.Stdin, os.Stdout, terminalWidth(), log)
	if err := c.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Console error")
	}
}

// terminalWidth returns the width of stdout, or the default when stdout is
// not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return console.DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return console.DefaultWidth
	}
	return w
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
