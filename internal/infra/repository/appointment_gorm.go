package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(httperr.CodeBusinessNotFound)
		}
		return nil, err
	}
	return &biz, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomersByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Customer, error) {

	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment runs the whole booking write in one transaction:
// re-check the active slot, insert the appointment, insert the customer
// links. The partial unique index on (business_id, date, time) for
// status=ACTIVE is the final arbiter under concurrency; whichever
// transaction commits first wins and the loser gets time_slot_conflict.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	customerIDs []uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"business_id = ? AND date = ? AND time = ? AND status = ?",
				ap.BusinessID, ap.Date, ap.Time, string(domain.StatusActive),
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeTimeSlotConflict)
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for _, customerID := range customerIDs {
			link := models.AppointmentCustomer{
				AppointmentID: ap.ID,
				CustomerID:    customerID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Customers.Customer").
			Preload("Business").
			First(ap, ap.ID).Error
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeTimeSlotConflict)
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Business").
		Preload("Customers.Customer").
		First(&ap, appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":       ap.Status,
			"notes":        ap.Notes,
			"cancelled_at": ap.CancelledAt,
		}).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForProvider(
	ctx context.Context,
	providerID uint,
	filter domain.ListProviderFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Joins("JOIN businesses ON businesses.id = appointments.business_id").
		Where("businesses.provider_id = ?", providerID)

	if filter.BusinessID != nil {
		q = q.Where("appointments.business_id = ?", *filter.BusinessID)
	}
	if filter.From != "" {
		q = q.Where("appointments.date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("appointments.date <= ?", filter.To)
	}

	var aps []models.Appointment
	if err := q.
		Preload("Business").
		Preload("Customers.Customer").
		Order("appointments.date ASC, appointments.time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Joins("JOIN appointment_customers ON appointment_customers.appointment_id = appointments.id").
		Where("appointment_customers.customer_id = ?", customerID).
		Preload("Business").
		Preload("Customers.Customer").
		Order("appointments.date ASC, appointments.time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// IsSlotAvailable uses the exact predicate of the booking re-check so a
// "looks available" read and the booking transaction can only disagree on
// a genuine race, which the unique index then resolves.
func (r *AppointmentGormRepository) IsSlotAvailable(
	ctx context.Context,
	businessID uint,
	date string,
	timeOfDay string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"business_id = ? AND date = ? AND time = ? AND status = ?",
			businessID, date, timeOfDay, string(domain.StatusActive),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count == 0, nil
}

func (r *AppointmentGormRepository) ListAvailabilityForBusiness(
	ctx context.Context,
	businessID uint,
) ([]models.Availability, error) {

	var windows []models.Availability
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	businessID uint,
	date string,
) (map[string]bool, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"business_id = ? AND date = ? AND status = ?",
			businessID, date, string(domain.StatusActive),
		).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(times))
	for _, t := range times {
		booked[t] = true
	}
	return booked, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
