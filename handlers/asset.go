package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcos/config"
	"pcos/models"
	"pcos/services/asset"
	"pcos/utils"
)

// AssetHandler exposes the asset register and booking lifecycle endpoints.
type AssetHandler struct {
	Service asset.AssetService
	Logger  *zap.Logger
}

func NewAssetHandler(svc asset.AssetService, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{Service: svc, Logger: logger}
}

// assetError maps the booking error taxonomy onto HTTP statuses.
func assetError(c *gin.Context, err error) {
	var conflict *asset.ConflictError
	var notFound *asset.NotFoundError
	var invalidStatus *asset.InvalidStatusError
	var invalidInterval *models.InvalidIntervalError
	switch {
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "booking conflict", conflict.Message)
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "not found", notFound.Message)
	case errors.As(err, &invalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "invalid status", invalidStatus.Message)
	case errors.As(err, &invalidInterval):
		utils.JSONError(c, http.StatusBadRequest, "invalid interval", invalidInterval.Message)
	default:
		utils.JSONError(c, http.StatusBadRequest, "request failed", err.Error())
	}
}

// RegisterAsset creates an asset record.
func (h *AssetHandler) RegisterAsset(c *gin.Context) {
	var input struct {
		ID            string  `json:"id" binding:"required"`
		Name          string  `json:"name" binding:"required"`
		Type          string  `json:"type"`
		Location      string  `json:"location"`
		Status        string  `json:"status"`
		DepositAmount float64 `json:"deposit_amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(models.Asset{
		ID:            input.ID,
		Name:          input.Name,
		Type:          input.Type,
		Location:      input.Location,
		Status:        input.Status,
		DepositAmount: input.DepositAmount,
	})
	if err != nil {
		assetError(c, err)
		return
	}
	h.Logger.Info("asset registered", zap.String("assetID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// ListAssets returns the full asset register.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.Service.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list assets", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(assets), "assets": assets})
}

// GetAsset fetches one asset with its full booking history.
func (h *AssetHandler) GetAsset(c *gin.Context) {
	a, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		assetError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// CheckAvailability answers whether a candidate interval can be booked.
func (h *AssetHandler) CheckAvailability(c *gin.Context) {
	interval, err := models.ParseBookingInterval(c.Query("start"), c.Query("end"))
	if err != nil {
		assetError(c, err)
		return
	}
	available, err := h.Service.IsAvailable(c.Param("id"), interval)
	if err != nil {
		assetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset_id": c.Param("id"), "available": available})
}

// BookAsset places a booking request.
func (h *AssetHandler) BookAsset(c *gin.Context) {
	var input struct {
		UserID    string `json:"user_id" binding:"required"`
		StartTime string `json:"start_time" binding:"required,bookingtime"`
		EndTime   string `json:"end_time" binding:"required,bookingtime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	interval, err := models.ParseBookingInterval(input.StartTime, input.EndTime)
	if err != nil {
		assetError(c, err)
		return
	}
	booking, err := h.Service.Book(c.Param("id"), input.UserID, interval)
	if err != nil {
		assetError(c, err)
		return
	}
	h.Logger.Info("asset booked",
		zap.String("assetID", c.Param("id")),
		zap.String("userID", input.UserID),
		zap.String("bookingID", booking.ID))
	c.JSON(http.StatusCreated, booking)
}

// CheckIn starts the active booking for a user.
func (h *AssetHandler) CheckIn(c *gin.Context) {
	var input struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.CheckIn(c.Param("id"), input.UserID); err != nil {
		assetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checked in", "asset_id": c.Param("id"), "user_id": input.UserID})
}

// CheckOut completes the ongoing booking for a user.
func (h *AssetHandler) CheckOut(c *gin.Context) {
	var input struct {
		UserID    string `json:"user_id" binding:"required"`
		Condition string `json:"condition"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.CheckOut(c.Param("id"), input.UserID, input.Condition); err != nil {
		assetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checked out", "asset_id": c.Param("id"), "user_id": input.UserID})
}

// AddMaintenance schedules a maintenance window on the asset.
func (h *AssetHandler) AddMaintenance(c *gin.Context) {
	var input struct {
		StartTime   string `json:"start_time" binding:"required,bookingtime"`
		EndTime     string `json:"end_time" binding:"required,bookingtime"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	interval, err := models.ParseBookingInterval(input.StartTime, input.EndTime)
	if err != nil {
		assetError(c, err)
		return
	}
	if err := h.Service.AddMaintenance(c.Param("id"), interval, input.Description); err != nil {
		assetError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "maintenance record added", "asset_id": c.Param("id")})
}

// SetStatus applies an administrative status override.
func (h *AssetHandler) SetStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.SetStatus(c.Param("id"), input.Status); err != nil {
		assetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "asset_id": c.Param("id"), "status": input.Status})
}

// QuoteFee computes the booking fee for an interval at an hourly rate.
func (h *AssetHandler) QuoteFee(c *gin.Context) {
	interval, err := models.ParseBookingInterval(c.Query("start"), c.Query("end"))
	if err != nil {
		assetError(c, err)
		return
	}
	rate := config.AppConfig.DefaultHourlyRate
	if raw := c.Query("rate"); raw != "" {
		rate, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate", "details": err.Error()})
			return
		}
	}
	fee := h.Service.QuoteBookingFee(interval, rate)
	c.JSON(http.StatusOK, gin.H{
		"asset_id": c.Param("id"),
		"hours":    interval.Hours(),
		"rate":     rate,
		"fee":      fee,
	})
}
