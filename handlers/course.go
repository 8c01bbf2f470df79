package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcos/services/course"
	"pcos/utils"
)

// CourseHandler exposes the course catalog endpoints.
type CourseHandler struct {
	Service course.CourseService
	Logger  *zap.Logger
}

func NewCourseHandler(svc course.CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{Service: svc, Logger: logger}
}

// AddCourse creates a catalog entry.
func (h *CourseHandler) AddCourse(c *gin.Context) {
	var input struct {
		Code        string  `json:"code" binding:"required"`
		Title       string  `json:"title" binding:"required"`
		Instructor  string  `json:"instructor"`
		Fee         float64 `json:"fee"`
		Credits     int     `json:"credits"`
		MaxCapacity int     `json:"max_capacity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.AddCourse(course.CourseInput{
		Code:        input.Code,
		Name:        input.Title,
		Lecturer:    input.Instructor,
		Fee:         input.Fee,
		Credits:     input.Credits,
		MaxCapacity: input.MaxCapacity,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add course", err.Error())
		return
	}
	h.Logger.Info("course added", zap.String("code", created.Code))
	c.JSON(http.StatusCreated, created)
}

// ListCourses returns the full catalog.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.Service.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list courses", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(courses), "courses": courses})
}

// GetCourse fetches one catalog entry.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	found, err := h.Service.GetByCode(c.Param("code"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "course not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, found)
}

// AssignLecturer sets the lecturer on a course.
func (h *CourseHandler) AssignLecturer(c *gin.Context) {
	var input struct {
		Lecturer string `json:"lecturer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.AssignLecturer(c.Param("code"), input.Lecturer); err != nil {
		utils.JSONError(c, http.StatusNotFound, "course not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lecturer assigned", "code": c.Param("code"), "lecturer": input.Lecturer})
}

// AddSchedule appends a weekly slot to a course.
func (h *CourseHandler) AddSchedule(c *gin.Context) {
	var input struct {
		Day       string `json:"day" binding:"required,weekday"`
		StartTime string `json:"start_time" binding:"required,clocktime"`
		EndTime   string `json:"end_time" binding:"required,clocktime"`
		Venue     string `json:"venue"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	entry, err := h.Service.AddSchedule(c.Param("code"), course.ScheduleInput{
		Day:       input.Day,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Venue:     input.Venue,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add schedule", err.Error())
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// CheckConflict runs the schedule-conflict predicate between two courses.
func (h *CourseHandler) CheckConflict(c *gin.Context) {
	codeA, codeB := c.Query("a"), c.Query("b")
	if codeA == "" || codeB == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters a and b are required"})
		return
	}
	conflict, err := h.Service.HasScheduleConflict(codeA, codeB)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "course not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"a": codeA, "b": codeB, "conflict": conflict})
}

// CourseReport serves the JSON report for one course.
func (h *CourseHandler) CourseReport(c *gin.Context) {
	report, err := h.Service.Report(c.Param("code"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "course not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
