package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/middleware"
	"github.com/amdeilami/alicetant/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List retorna a trilha de auditoria dos negócios do provider autenticado.
func (h *AuditLogsHandler) List(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var logs []models.AuditLog
	if err := h.db.
		Joins("JOIN businesses ON businesses.id = audit_logs.business_id").
		Where("businesses.provider_id = ?", providerID).
		Order("audit_logs.created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	c.JSON(http.StatusOK, logs)
}
