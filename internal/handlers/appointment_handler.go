package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/dto"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/middleware"
	"github.com/amdeilami/alicetant/internal/models"
	ucAppointment "github.com/amdeilami/alicetant/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	cancel       *ucAppointment.CancelAppointment
	listCustomer *ucAppointment.ListCustomerAppointments
	listProvider *ucAppointment.ListProviderAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	listCustomer *ucAppointment.ListCustomerAppointments,
	listProvider *ucAppointment.ListProviderAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		cancel:       cancel,
		listCustomer: listCustomer,
		listProvider: listProvider,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BusinessID  uint   `json:"business_id" binding:"required"`
	CustomerIDs []uint `json:"customer_ids"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	// o cliente autenticado sempre participa do agendamento
	customerIDs := req.CustomerIDs
	if !containsID(customerIDs, customerID) {
		customerIDs = append([]uint{customerID}, customerIDs...)
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		BusinessID:  req.BusinessID,
		CustomerIDs: customerIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toListDTO(ap))
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), uint(id), ucAppointment.Actor{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListDTO(ap))
}

// ======================================================
// LIST (CUSTOMER)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	grouped, err := h.listCustomer.Execute(c.Request.Context(), customerID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upcoming": toListDTOs(grouped.Upcoming),
		"past":     toListDTOs(grouped.Past),
	})
}

// ======================================================
// LIST (PROVIDER)
// ======================================================

func (h *AppointmentHandler) ListForProvider(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	filter := domain.ListProviderFilter{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	if raw := c.Query("business_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_business_id", "Business id must be numeric.")
			return
		}
		bizID := uint(id)
		filter.BusinessID = &bizID
	}

	aps, err := h.listProvider.Execute(c.Request.Context(), providerID, filter)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListDTOs(aps))
}

// ======================================================
// HELPERS
// ======================================================

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func toListDTO(ap *models.Appointment) dto.AppointmentListDTO {
	names := make([]string, 0, len(ap.Customers))
	for _, link := range ap.Customers {
		names = append(names, link.Customer.FullName)
	}

	return dto.AppointmentListDTO{
		ID:            ap.ID,
		Reference:     ap.Reference,
		BusinessID:    ap.BusinessID,
		BusinessName:  ap.Business.Name,
		Date:          ap.Date,
		Time:          ap.Time,
		Status:        ap.Status,
		Notes:         ap.Notes,
		CustomerNames: names,
		CreatedAt:     ap.CreatedAt,
	}
}

func toListDTOs(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, toListDTO(&aps[i]))
	}
	return out
}
