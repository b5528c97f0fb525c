package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/attendly/attendly/internal/app/models/dto"
	"github.com/attendly/attendly/internal/app/services"
	"github.com/attendly/attendly/internal/middleware"
	"github.com/attendly/attendly/internal/pkg/validation"
)

// AttendanceController handles course, roster and attendance operations
type AttendanceController struct {
	attendanceService services.AttendanceService
	scopeService      services.ScopeService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService, scopeService services.ScopeService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		scopeService:      scopeService,
		logger:            logger,
	}
}

// ListCourses returns the courses taught by the authenticated teacher
// @Summary List own courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Course list"
// @Router /courses [get]
func (c *AttendanceController) ListCourses(ctx *gin.Context) {
	teacherID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.scopeService.TeacherCourses(teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// Roster returns the enrolled students of one course with their marks for a date
// @Summary Get a course roster for a date
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.RosterResponse} "Roster"
// @Failure 403 {object} dto.ErrorResponse "Course not owned by teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/roster [get]
func (c *AttendanceController) Roster(ctx *gin.Context) {
	teacherID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date := ctx.Query("date")
	if !validation.IsCalendarDate(date) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
		errorDetail = errorDetail.WithDetails("date must be a valid YYYY-MM-DD calendar date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entries, err := c.scopeService.Roster(teacherID, courseID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.RosterEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.RosterEntryResponse{
			Student: dto.NewUserResponse(entry.Student),
			Record:  entry.Record,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RosterResponse{
		CourseID: courseID,
		Date:     date,
		Entries:  responses,
	}))
}

// MarkAttendance records one student's status for a course on a date
// @Summary Mark attendance
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.MarkAttendanceRequest true "Attendance mark"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord} "Recorded mark"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Course not owned by teacher"
// @Router /courses/{id}/attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	teacherID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	record, err := c.attendanceService.Mark(teacherID, courseID, req.StudentID, req.Date, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("courseID", courseID).
		Int64("studentID", req.StudentID).
		Str("date", req.Date).
		Str("status", string(req.Status)).
		Msg("Attendance marked")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// ListAttendance returns the authenticated student's dated history
// @Summary List own attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Restrict to one course"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceListResponse} "Records, newest first"
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var courseID int64
	if raw := ctx.Query("courseId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		courseID = parsed
	}

	records := c.attendanceService.StudentRecords(studentID, courseID)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AttendanceListResponse{
		Records: records,
		Total:   len(records),
	}))
}

// AttendanceSummary returns derived statistics for the authenticated student
// @Summary Summarize own attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceSummaryResponse} "Overall and per-course statistics"
// @Router /attendance/summary [get]
func (c *AttendanceController) AttendanceSummary(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	role, _ := middleware.CurrentRole(ctx)
	projection, err := c.scopeService.For(role, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summary := dto.AttendanceSummaryResponse{
		Overall: services.ComputeStats(projection.Records),
		Courses: []services.CourseReport{},
	}
	for _, course := range projection.Courses {
		records := c.attendanceService.StudentRecords(studentID, course.ID)
		summary.Courses = append(summary.Courses, services.CourseReport{
			Course:  course,
			Stats:   services.ComputeStats(records),
			Records: records,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
