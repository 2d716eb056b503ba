package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kurbalija/IU-Dashboard/internal/config"
	"github.com/Kurbalija/IU-Dashboard/internal/handler"
	"github.com/Kurbalija/IU-Dashboard/internal/logger"
	"github.com/Kurbalija/IU-Dashboard/internal/repository"
	"github.com/Kurbalija/IU-Dashboard/internal/router"
	"github.com/Kurbalija/IU-Dashboard/internal/service"
	"github.com/Kurbalija/IU-Dashboard/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("courses", cfg.CoursesPath).
		Str("student", cfg.StudentPath).
		Msg("Starting IU Dashboard server")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Load Record ───────────────────────────────────────────────────
	records := service.NewRecordService(
		repository.NewCourseRepository(cfg.CoursesPath),
		repository.NewStudentRepository(cfg.StudentPath),
		log,
	)
	if err := records.Load(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to load record")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	handlers := &router.Handlers{
		Record: handler.NewRecordHandler(records, log),
	}
	r := router.SetupRouter(handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// In-flight writes finish under the service lock before Shutdown returns.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
