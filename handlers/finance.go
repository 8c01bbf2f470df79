package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcos/services/finance"
	"pcos/utils"
)

// FinanceHandler exposes the student payment endpoints.
type FinanceHandler struct {
	Service finance.FinanceService
	Logger  *zap.Logger
}

func NewFinanceHandler(svc finance.FinanceService, logger *zap.Logger) *FinanceHandler {
	return &FinanceHandler{Service: svc, Logger: logger}
}

// ProcessPayment applies a payment to a student's ledger.
func (h *FinanceHandler) ProcessPayment(c *gin.Context) {
	var input struct {
		StudentID string  `json:"student_id" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
		Date      string  `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.ProcessPayment(input.StudentID, input.Amount, input.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "payment failed", err.Error())
		return
	}
	h.Logger.Info("payment processed",
		zap.String("studentID", input.StudentID),
		zap.Float64("amount", input.Amount))
	c.JSON(http.StatusCreated, gin.H{
		"message":    "payment recorded",
		"student_id": input.StudentID,
		"amount":     input.Amount,
		"date":       input.Date,
	})
}

// StudentBalance recomputes a student's balance against a total fees figure.
func (h *FinanceHandler) StudentBalance(c *gin.Context) {
	total, err := strconv.ParseFloat(c.Query("total"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid total", "details": err.Error()})
		return
	}
	balance, err := h.Service.CalculateBalance(c.Param("studentID"), total)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "student not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"student_id": c.Param("studentID"), "balance": balance})
}
