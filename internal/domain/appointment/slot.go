package appointment

import (
	"time"

	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ===============================
// Slot = (business, date, time)
// ===============================

// CombineDateTime valida e combina os campos do slot em um instante UTC.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	t, err := time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		date+" "+timeOfDay,
		time.UTC,
	)
	if err != nil {
		return time.Time{}, httperr.ErrBusinessf(
			httperr.CodeInvalidAppointmentData,
			"invalid date or time format",
		)
	}
	return t, nil
}

// ValidateFuture garante que o slot é estritamente posterior a now.
func ValidateFuture(date, timeOfDay string, now time.Time) error {
	at, err := CombineDateTime(date, timeOfDay)
	if err != nil {
		return err
	}
	if !at.After(now) {
		return httperr.ErrBusinessf(
			httperr.CodeInvalidAppointmentData,
			"appointment date and time must be in the future",
		)
	}
	return nil
}

// IsUpcoming reports whether the appointment is in the future and active.
func IsUpcoming(ap *models.Appointment, now time.Time) bool {
	at, err := CombineDateTime(ap.Date, ap.Time)
	if err != nil {
		return false
	}
	return at.After(now) && ap.Status == string(StatusActive)
}
