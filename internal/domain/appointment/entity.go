package appointment

import (
	"time"

	"github.com/amdeilami/alicetant/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// HasCustomer reports whether the customer participates in the appointment.
// Requires ap.Customers to be loaded.
func HasCustomer(ap *models.Appointment, customerID uint) bool {
	for _, link := range ap.Customers {
		if link.CustomerID == customerID {
			return true
		}
	}
	return false
}
