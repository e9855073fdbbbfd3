package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/amdeilami/alicetant/internal/httperr"
)

// writeBusinessError maps usecase error codes onto HTTP statuses:
// 404 not-found, 403 unauthorized, 409 slot conflict, 400 invalid data,
// 500 for anything unclassified.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Unexpected failure.")
		return
	}

	switch code {
	case httperr.CodeBusinessNotFound:
		httperr.NotFound(c, code, "Business not found.")
	case httperr.CodeAppointmentNotFound:
		httperr.NotFound(c, code, "Appointment not found.")
	case httperr.CodeUnauthorizedAccess:
		httperr.Forbidden(c, code, "Not allowed.")
	case httperr.CodeTimeSlotConflict:
		httperr.Conflict(c, code, "Time slot is already booked.")
	case httperr.CodeInvalidAppointmentData:
		httperr.BadRequest(c, code, err.Error())
	default:
		httperr.BadRequest(c, code, err.Error())
	}
}
