package appointment

import (
	"context"

	"github.com/amdeilami/alicetant/internal/models"
)

// ListProviderFilter narrows provider listings. From/To are inclusive
// "2006-01-02" bounds; BusinessID restricts to a single business.
type ListProviderFilter struct {
	BusinessID *uint
	From       string
	To         string
}

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	// -------- Customer --------
	GetCustomersByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Customer, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment persists the appointment and one customer link per
	// id inside a single transaction. Returns a time_slot_conflict business
	// error when the active-slot constraint is violated.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		customerIDs []uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForProvider(
		ctx context.Context,
		providerID uint,
		filter ListProviderFilter,
	) ([]models.Appointment, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	// -------- Availability --------
	IsSlotAvailable(
		ctx context.Context,
		businessID uint,
		date string,
		timeOfDay string,
	) (bool, error)

	ListAvailabilityForBusiness(
		ctx context.Context,
		businessID uint,
	) ([]models.Availability, error)

	ListBookedTimes(
		ctx context.Context,
		businessID uint,
		date string,
	) (map[string]bool, error)
}
