package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amdeilami/alicetant/internal/cache"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/httpresp"
	"github.com/amdeilami/alicetant/internal/models"
	ucAppointment "github.com/amdeilami/alicetant/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated business directory plus the
// slot-availability reads used by the booking UI.
type PublicHandler struct {
	db        *gorm.DB
	cache     *cache.BusinessCache
	checkSlot *ucAppointment.CheckSlotAvailability
	openSlots *ucAppointment.ListOpenSlots
}

func NewPublicHandler(
	db *gorm.DB,
	bizCache *cache.BusinessCache,
	checkSlot *ucAppointment.CheckSlotAvailability,
	openSlots *ucAppointment.ListOpenSlots,
) *PublicHandler {
	return &PublicHandler{
		db:        db,
		cache:     bizCache,
		checkSlot: checkSlot,
		openSlots: openSlots,
	}
}

// ======================================================
// DIRECTORY
// ======================================================

func (h *PublicHandler) ListBusinesses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var businesses []models.Business
	if err := h.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_businesses", "Could not list businesses.")
		return
	}

	httpresp.List(c, businesses)
}

func (h *PublicHandler) SearchBusinesses(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		httperr.BadRequest(c, "missing_query", "Search query is required.")
		return
	}

	like := "%" + query + "%"

	var businesses []models.Business
	if err := h.db.
		Where("LOWER(name) LIKE ? OR LOWER(summary) LIKE ?", like, like).
		Order("created_at DESC").
		Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_search_businesses", "Could not search businesses.")
		return
	}

	httpresp.List(c, businesses)
}

func (h *PublicHandler) GetBusiness(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_business_id", "Business id must be numeric.")
		return
	}

	if biz, ok := h.cache.Get(c.Request.Context(), uint(id)); ok {
		c.JSON(http.StatusOK, biz)
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeBusinessNotFound, "Business not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Could not load business.")
		return
	}

	h.cache.Set(c.Request.Context(), &biz)
	c.JSON(http.StatusOK, biz)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) SlotAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_business_id", "Business id must be numeric.")
		return
	}

	date := c.Query("date")
	timeOfDay := c.Query("time")
	if date == "" || timeOfDay == "" {
		httperr.BadRequest(c, "missing_date_or_time", "Both date and time are required.")
		return
	}

	available, err := h.checkSlot.Execute(c.Request.Context(), uint(id), date, timeOfDay)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business_id": uint(id),
		"date":        date,
		"time":        timeOfDay,
		"available":   available,
	})
}

func (h *PublicHandler) OpenSlots(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_business_id", "Business id must be numeric.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	granularity, _ := strconv.Atoi(c.DefaultQuery("granularity", "30"))

	slots, err := h.openSlots.Execute(c.Request.Context(), uint(id), date, granularity)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business_id": uint(id),
		"date":        date,
		"slots":       slots,
	})
}
