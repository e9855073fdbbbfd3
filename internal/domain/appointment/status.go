package appointment

import "github.com/amdeilami/alicetant/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
)

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado.
// CANCELLED é terminal: nunca volta para ACTIVE nem é alterado de novo.
func CanCancel(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusinessf(
			httperr.CodeInvalidAppointmentData,
			"appointment is already cancelled",
		)
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
