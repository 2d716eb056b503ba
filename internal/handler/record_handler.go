package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Kurbalija/IU-Dashboard/internal/engine"
	"github.com/Kurbalija/IU-Dashboard/internal/export"
	"github.com/Kurbalija/IU-Dashboard/internal/model"
	"github.com/Kurbalija/IU-Dashboard/internal/response"
	"github.com/Kurbalija/IU-Dashboard/internal/service"
	"github.com/Kurbalija/IU-Dashboard/internal/validator"
)

// RecordHandler serves the student record over HTTP.
type RecordHandler struct {
	records *service.RecordService
	log     zerolog.Logger
}

func NewRecordHandler(records *service.RecordService, log zerolog.Logger) *RecordHandler {
	return &RecordHandler{
		records: records,
		log:     log.With().Str("component", "record_handler").Logger(),
	}
}

// GetOverview godoc
// GET /api/v1/overview
func (h *RecordHandler) GetOverview(c *gin.Context) {
	response.Success(c, http.StatusOK, h.records.Snapshot())
}

// ListCourses godoc
// GET /api/v1/courses
func (h *RecordHandler) ListCourses(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"courses": h.records.Snapshot().Courses})
}

// GetCourse godoc
// GET /api/v1/courses/:code
func (h *RecordHandler) GetCourse(c *gin.Context) {
	course, err := h.records.GetCourse(c.Param("code"))
	if err != nil {
		h.failMutation(c, err, response.ErrValidation)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// UpdateGrade godoc
// PUT /api/v1/courses/:code/grade
func (h *RecordHandler) UpdateGrade(c *gin.Context) {
	var req model.UpdateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failBind(c, fields)
		return
	}

	if err := h.records.ApplyGrade(c.Request.Context(), c.Param("code"), *req.Grade); err != nil {
		h.failMutation(c, err, response.ErrInvalidGrade)
		return
	}
	response.Success(c, http.StatusOK, h.records.Snapshot())
}

// UpdateCredits godoc
// PUT /api/v1/courses/:code/credits
func (h *RecordHandler) UpdateCredits(c *gin.Context) {
	var req model.UpdateCreditsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failBind(c, fields)
		return
	}

	if err := h.records.ApplyCreditChange(c.Request.Context(), c.Param("code"), req.Credits); err != nil {
		h.failMutation(c, err, response.ErrInvalidCredits)
		return
	}
	response.Success(c, http.StatusOK, h.records.Snapshot())
}

// RenameCourse godoc
// PUT /api/v1/courses/:code/name
func (h *RecordHandler) RenameCourse(c *gin.Context) {
	var req model.RenameCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failBind(c, fields)
		return
	}

	if err := h.records.RenameCourse(c.Request.Context(), c.Param("code"), req.Name); err != nil {
		h.failMutation(c, err, response.ErrValidation)
		return
	}
	response.Success(c, http.StatusOK, h.records.Snapshot())
}

// ChangeCourseCode godoc
// PUT /api/v1/courses/:code/code
func (h *RecordHandler) ChangeCourseCode(c *gin.Context) {
	var req model.ChangeCourseCodeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failBind(c, fields)
		return
	}

	if err := h.records.ChangeCourseCode(c.Request.Context(), c.Param("code"), req.Code); err != nil {
		h.failMutation(c, err, response.ErrValidation)
		return
	}
	response.Success(c, http.StatusOK, h.records.Snapshot())
}

// UpdateStudent godoc
// PUT /api/v1/student
func (h *RecordHandler) UpdateStudent(c *gin.Context) {
	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failBind(c, fields)
		return
	}

	if err := h.records.UpdateStudent(c.Request.Context(), req.Name, req.Program, *req.TargetCredits); err != nil {
		h.failMutation(c, err, response.ErrValidation)
		return
	}
	response.Success(c, http.StatusOK, h.records.Snapshot())
}

// ExportWorkbook godoc
// GET /api/v1/export.xlsx
func (h *RecordHandler) ExportWorkbook(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, h.records.Snapshot()); err != nil {
		h.log.Error().Err(err).Msg("failed to build workbook")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="kurse.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// failMutation maps engine errors onto the response envelope. parseCode is
// the code reported when the raw input could not be parsed at all.
func (h *RecordHandler) failMutation(c *gin.Context, err error, parseCode response.ErrCode) {
	switch {
	case errors.Is(err, engine.ErrCourseNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, engine.ErrParse):
		response.Fail(c, http.StatusBadRequest, parseCode)
	case errors.Is(err, engine.ErrRange):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrOutOfRange)
	case errors.Is(err, engine.ErrDuplicateCode):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, engine.ErrEmptyField):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// failBind reports malformed JSON separately from field validation failures.
func failBind(c *gin.Context, fields map[string]string) {
	if _, ok := fields["detail"]; ok && len(fields) == 1 {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}
	response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
}
