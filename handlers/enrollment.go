package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcos/config"
	"pcos/services/enrollment"
	"pcos/services/grading"
	"pcos/utils"
)

// EnrollmentHandler exposes enrollment and grading endpoints.
type EnrollmentHandler struct {
	Service enrollment.EnrollmentService
	Grading grading.GradingService
	Logger  *zap.Logger
}

func NewEnrollmentHandler(svc enrollment.EnrollmentService, gr grading.GradingService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{Service: svc, Grading: gr, Logger: logger}
}

// Enroll registers a student into a course.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var input struct {
		StudentID  string `json:"student_id" binding:"required"`
		CourseCode string `json:"course_code" binding:"required"`
		Semester   string `json:"semester"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Semester == "" {
		input.Semester = config.AppConfig.DefaultSemester
	}

	created, err := h.Service.Enroll(input.StudentID, input.CourseCode, input.Semester)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "enrollment failed", err.Error())
		return
	}
	h.Logger.Info("student enrolled",
		zap.String("studentID", input.StudentID),
		zap.String("courseCode", input.CourseCode),
		zap.String("enrollmentID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// FindEnrollment looks up an enrollment by student, course and semester.
func (h *EnrollmentHandler) FindEnrollment(c *gin.Context) {
	studentID, courseCode := c.Query("student"), c.Query("course")
	if studentID == "" || courseCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters student and course are required"})
		return
	}
	semester := c.Query("semester")
	if semester == "" {
		semester = config.AppConfig.DefaultSemester
	}
	found, err := h.Service.Find(studentID, courseCode, semester)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "enrollment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetEnrollment fetches one enrollment record.
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	found, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "enrollment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, found)
}

// Withdraw moves an enrollment to WITHDRAWN.
func (h *EnrollmentHandler) Withdraw(c *gin.Context) {
	if err := h.Service.Withdraw(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "withdrawal failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "enrollment withdrawn", "enrollment_id": c.Param("id")})
}

// AssignGrade writes a letter grade onto an enrollment.
func (h *EnrollmentHandler) AssignGrade(c *gin.Context) {
	var input struct {
		Grade string `json:"grade" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Grading.AssignGrade(c.Param("id"), input.Grade); err != nil {
		utils.JSONError(c, http.StatusNotFound, "enrollment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "grade assigned", "enrollment_id": c.Param("id"), "grade": input.Grade})
}

// AddAssignmentScore appends an assignment score to an enrollment.
func (h *EnrollmentHandler) AddAssignmentScore(c *gin.Context) {
	var input struct {
		Score *float64 `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Grading.AddAssignmentScore(c.Param("id"), *input.Score); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add score", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "assignment score added", "enrollment_id": c.Param("id")})
}

// SetExamScore records the exam score on an enrollment.
func (h *EnrollmentHandler) SetExamScore(c *gin.Context) {
	var input struct {
		Score *float64 `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Grading.SetExamScore(c.Param("id"), *input.Score); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to set exam score", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "exam score recorded", "enrollment_id": c.Param("id")})
}

// FinalizeGrade computes and records the weighted final grade.
func (h *EnrollmentHandler) FinalizeGrade(c *gin.Context) {
	finalGrade, err := h.Grading.FinalizeGrade(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to finalize grade", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollment_id": c.Param("id"), "final_grade": finalGrade})
}
