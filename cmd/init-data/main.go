package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Kurbalija/IU-Dashboard/internal/config"
	"github.com/Kurbalija/IU-Dashboard/internal/engine"
	"github.com/Kurbalija/IU-Dashboard/internal/logger"
	"github.com/Kurbalija/IU-Dashboard/internal/model"
	"github.com/Kurbalija/IU-Dashboard/internal/repository"
)

func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "Overwrite existing data files")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx := context.Background()

	if !force {
		for _, p := range []string{cfg.StudentPath, cfg.CoursesPath} {
			if _, err := os.Stat(p); err == nil {
				fmt.Printf("Error: %s already exists (use -force to overwrite)\n", p)
				os.Exit(1)
			}
		}
	}

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Studentendaten anlegen ===")

	fmt.Print("Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	fmt.Print("Studiengang: ")
	program, _ := reader.ReadString('\n')

	fmt.Print("Ziel-ECTS (default 180): ")
	targetStr, _ := reader.ReadString('\n')
	target := 180
	if targetStr = strings.TrimSpace(targetStr); targetStr != "" {
		n, err := engine.ParseCredits(targetStr)
		if err != nil {
			fmt.Println("Error: Ziel-ECTS must be a whole number >= 0")
			return
		}
		target = n
	}

	student, err := model.NewStudent(name, program, target)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Courses, until an empty code is entered.
	fmt.Println("\n=== Kurse anlegen (leerer Kurscode beendet) ===")
	var courses []model.Course
	for {
		fmt.Print("Kurscode: ")
		code, err := reader.ReadString('\n')
		code = strings.TrimSpace(code)
		if code == "" {
			break
		}
		if engine.FindCourse(courses, code) >= 0 {
			fmt.Println("Error: Kurscode already used")
			continue
		}

		fmt.Print("Kursname: ")
		courseName, _ := reader.ReadString('\n')

		fmt.Print("ECTS: ")
		creditsStr, _ := reader.ReadString('\n')
		credits, perr := engine.ParseCredits(creditsStr)
		if perr != nil {
			fmt.Println("Error: ECTS must be a whole number >= 0")
			continue
		}

		c, cerr := model.NewCourse(code, courseName, credits, model.NoGrade())
		if cerr != nil {
			fmt.Printf("Error: %v\n", cerr)
			continue
		}
		courses = append(courses, c)
		if err != nil {
			break // input ended
		}
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	if err := repository.NewStudentRepository(cfg.StudentPath).Save(ctx, student); err != nil {
		log.Fatal().Err(err).Str("path", cfg.StudentPath).Msg("Failed to write student file")
	}
	if err := repository.NewCourseRepository(cfg.CoursesPath).Save(ctx, courses); err != nil {
		log.Fatal().Err(err).Str("path", cfg.CoursesPath).Msg("Failed to write course file")
	}

	fmt.Printf("\nSuccess! %s and %s created with %d course(s).\n", cfg.StudentPath, cfg.CoursesPath, len(courses))
}
