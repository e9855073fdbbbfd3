package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/middleware"
	"github.com/amdeilami/alicetant/internal/models"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type AvailabilityWindow struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ReplaceAvailabilityRequest struct {
	Windows []AvailabilityWindow `json:"windows" binding:"required,dive"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	biz, ok := ownedBusiness(c, h.db, providerID)
	if !ok {
		return
	}

	var windows []models.Availability
	if err := h.db.
		Where("business_id = ?", biz.ID).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Could not list availability.")
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Replace troca todas as janelas semanais do negócio de uma vez.
func (h *AvailabilityHandler) Replace(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	biz, ok := ownedBusiness(c, h.db, providerID)
	if !ok {
		return
	}

	var req ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability data.")
		return
	}

	for _, w := range req.Windows {
		start, err1 := time.Parse("15:04", w.StartTime)
		end, err2 := time.Parse("15:04", w.EndTime)
		if err1 != nil || err2 != nil {
			httperr.BadRequest(c, "invalid_time_format", "Times must be HH:MM.")
			return
		}
		if !end.After(start) {
			httperr.BadRequest(c, "invalid_window", "End time must be after start time.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("business_id = ?", biz.ID).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}

		for _, w := range req.Windows {
			window := models.Availability{
				BusinessID: biz.ID,
				DayOfWeek:  w.DayOfWeek,
				StartTime:  w.StartTime,
				EndTime:    w.EndTime,
			}
			if err := tx.Create(&window).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_replace_availability", "Could not save availability.")
		return
	}

	h.Get(c)
}
