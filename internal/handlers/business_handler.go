package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amdeilami/alicetant/internal/audit"
	"github.com/amdeilami/alicetant/internal/cache"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/middleware"
	"github.com/amdeilami/alicetant/internal/models"
)

type BusinessHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.BusinessCache
}

func NewBusinessHandler(db *gorm.DB, auditDisp *audit.Dispatcher, bizCache *cache.BusinessCache) *BusinessHandler {
	return &BusinessHandler{db: db, audit: auditDisp, cache: bizCache}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBusinessRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Summary     string `json:"summary" binding:"max=512"`
	Logo        string `json:"logo"`
	Description string `json:"description" binding:"max=2000"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Summary     *string `json:"summary"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}

// ======================================================
// CREATE / UPDATE / DELETE (PROVIDER)
// ======================================================

func (h *BusinessHandler) Create(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid business data.")
		return
	}

	biz := models.Business{
		ProviderID:  providerID,
		Name:        req.Name,
		Summary:     req.Summary,
		Logo:        req.Logo,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
	}

	if err := h.db.Create(&biz).Error; err != nil {
		httperr.Internal(c, "failed_to_create_business", "Could not create business.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		UserID:     &providerID,
		Action:     "business_created",
		Entity:     "business",
		EntityID:   &biz.ID,
	})

	c.JSON(http.StatusCreated, biz)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	biz, ok := ownedBusiness(c, h.db, providerID)
	if !ok {
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid business data.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" || len(*req.Name) > 200 {
			httperr.BadRequest(c, "invalid_name", "Business name must be 1-200 characters.")
			return
		}
		biz.Name = *req.Name
	}
	if req.Summary != nil {
		if len(*req.Summary) > 512 {
			httperr.BadRequest(c, "invalid_summary", "Summary must be at most 512 characters.")
			return
		}
		biz.Summary = *req.Summary
	}
	if req.Logo != nil {
		biz.Logo = *req.Logo
	}
	if req.Description != nil {
		biz.Description = *req.Description
	}
	if req.Phone != nil {
		biz.Phone = *req.Phone
	}
	if req.Email != nil {
		biz.Email = *req.Email
	}
	if req.Address != nil {
		biz.Address = *req.Address
	}

	if err := h.db.Save(biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Could not update business.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), biz.ID)
	h.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		UserID:     &providerID,
		Action:     "business_updated",
		Entity:     "business",
		EntityID:   &biz.ID,
	})

	c.JSON(http.StatusOK, biz)
}

// Delete remove o negócio; appointments e vínculos caem por CASCADE no FK.
func (h *BusinessHandler) Delete(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	biz, ok := ownedBusiness(c, h.db, providerID)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Business{}, biz.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_business", "Could not delete business.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), biz.ID)
	h.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		UserID:     &providerID,
		Action:     "business_deleted",
		Entity:     "business",
		EntityID:   &biz.ID,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST (PROVIDER)
// ======================================================

func (h *BusinessHandler) ListMine(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	var businesses []models.Business
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_businesses", "Could not list businesses.")
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// ======================================================
// HELPERS
// ======================================================

// ownedBusiness resolve o :id da rota e exige que o provider seja o dono.
func ownedBusiness(c *gin.Context, db *gorm.DB, providerID uint) (*models.Business, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_business_id", "Business id must be numeric.")
		return nil, false
	}

	var biz models.Business
	if err := db.First(&biz, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeBusinessNotFound, "Business not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_business", "Could not load business.")
		return nil, false
	}

	if biz.ProviderID != providerID {
		httperr.Forbidden(c, httperr.CodeUnauthorizedAccess, "Business is owned by another provider.")
		return nil, false
	}

	return &biz, true
}
