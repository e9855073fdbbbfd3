package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/middleware"
	"github.com/amdeilami/alicetant/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	Bio         *string `json:"bio"`
	FullName    *string `json:"full_name"`
	Preferences *string `json:"preferences"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	resp := gin.H{"user": userPayload(&user)}

	switch role {
	case models.RoleProvider:
		var profile models.Provider
		if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			resp["provider_profile"] = profile
		}
	case models.RoleCustomer:
		var profile models.Customer
		if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			resp["customer_profile"] = profile
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save profile.")
		return
	}

	switch role {
	case models.RoleProvider:
		var profile models.Provider
		if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			if req.Bio != nil {
				profile.Bio = *req.Bio
			}
			if req.PhoneNumber != nil {
				profile.PhoneNumber = *req.PhoneNumber
			}
			if req.Address != nil {
				profile.Address = *req.Address
			}
			h.db.Save(&profile)
		}
	case models.RoleCustomer:
		var profile models.Customer
		if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			if req.FullName != nil {
				profile.FullName = *req.FullName
			}
			if req.PhoneNumber != nil {
				profile.PhoneNumber = *req.PhoneNumber
			}
			if req.Preferences != nil {
				profile.Preferences = *req.Preferences
			}
			h.db.Save(&profile)
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(&user)})
}
