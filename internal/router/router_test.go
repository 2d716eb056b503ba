package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kurbalija/IU-Dashboard/internal/config"
	"github.com/Kurbalija/IU-Dashboard/internal/handler"
	"github.com/Kurbalija/IU-Dashboard/internal/repository"
	"github.com/Kurbalija/IU-Dashboard/internal/service"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		CoursesPath:    filepath.Join(dir, "kurse.csv"),
		StudentPath:    filepath.Join(dir, "student.csv"),
		GinMode:        gin.TestMode,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	require.NoError(t, os.WriteFile(cfg.CoursesPath, []byte("Kurscode,Kursname,ECTS,Note\nMAT01,Mathematik I,5,1.70\n"), 0o644))
	require.NoError(t, os.WriteFile(cfg.StudentPath, []byte("Name,Studiengang,Ziel-ECTS\nErika,Informatik,180\n"), 0o644))

	svc := service.NewRecordService(
		repository.NewCourseRepository(cfg.CoursesPath),
		repository.NewStudentRepository(cfg.StudentPath),
		zerolog.Nop(),
	)
	require.NoError(t, svc.Load(context.Background()))

	return SetupRouter(&Handlers{Record: handler.NewRecordHandler(svc, zerolog.Nop())}, cfg, zerolog.Nop())
}

func TestSetupRouter_Health(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"request_id":"abc-123"`)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestSetupRouter_API(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"MAT01"`)
}

func TestSetupRouter_Routes(t *testing.T) {
	r := newRouter(t)

	want := map[string]bool{
		"GET /health":                       true,
		"GET /api/v1/overview":              true,
		"GET /api/v1/export.xlsx":           true,
		"GET /api/v1/courses":               true,
		"GET /api/v1/courses/:code":         true,
		"PUT /api/v1/courses/:code/grade":   true,
		"PUT /api/v1/courses/:code/credits": true,
		"PUT /api/v1/courses/:code/name":    true,
		"PUT /api/v1/courses/:code/code":    true,
		"PUT /api/v1/student":               true,
	}
	for _, route := range r.Routes() {
		delete(want, route.Method+" "+route.Path)
	}
	assert.Empty(t, want)
}
