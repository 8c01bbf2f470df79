package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcos/services/enrollment"
	"pcos/services/student"
	"pcos/utils"
)

// StudentHandler exposes the student register endpoints.
type StudentHandler struct {
	Service     student.StudentService
	Enrollments enrollment.EnrollmentService
	Logger      *zap.Logger
}

func NewStudentHandler(svc student.StudentService, enr enrollment.EnrollmentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{Service: svc, Enrollments: enr, Logger: logger}
}

// AddStudent registers a student record.
func (h *StudentHandler) AddStudent(c *gin.Context) {
	var input struct {
		StudentID     string `json:"student_id" binding:"required"`
		Name          string `json:"name" binding:"required"`
		Email         string `json:"email" binding:"required"`
		Program       string `json:"program"`
		AdmissionYear int    `json:"admission_year"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.AddStudent(student.StudentInput{
		StudentID:     input.StudentID,
		Name:          input.Name,
		Email:         input.Email,
		Program:       input.Program,
		AdmissionYear: input.AdmissionYear,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add student", err.Error())
		return
	}
	h.Logger.Info("student added", zap.String("studentID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// ListStudents returns the full student register.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.Service.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list students", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(students), "students": students})
}

// AddTuitionFee charges a fee onto a student's tuition balance.
func (h *StudentHandler) AddTuitionFee(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	balance, err := h.Service.AddTuitionFee(c.Param("id"), input.Amount)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "student not found", err.Error())
		return
	}
	h.Logger.Info("tuition fee added",
		zap.String("studentID", c.Param("id")),
		zap.Float64("amount", input.Amount))
	c.JSON(http.StatusOK, gin.H{"student_id": c.Param("id"), "tuition_balance": balance})
}

// GetStudent fetches one student record.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	found, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "student not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, found)
}

// StudentReport serves the JSON report for one student.
func (h *StudentHandler) StudentReport(c *gin.Context) {
	report, err := h.Service.Report(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "student not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

// StudentTranscript serves the academic transcript for one student.
func (h *StudentHandler) StudentTranscript(c *gin.Context) {
	transcript, err := h.Service.Transcript(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "student not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// StudentSchedule serves the weekly schedule view for one student.
func (h *StudentHandler) StudentSchedule(c *gin.Context) {
	schedule, err := h.Enrollments.StudentSchedule(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "student not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"student_id": c.Param("id"), "schedule": schedule})
}
