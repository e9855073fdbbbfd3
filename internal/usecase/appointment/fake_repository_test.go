package appointment

import (
	"context"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/models"
)

type createCall struct {
	ap          *models.Appointment
	customerIDs []uint
}

// fakeRepo é um Repository em memória para os testes de usecase. Erros
// podem ser injetados por campo; chamadas de escrita ficam gravadas.
type fakeRepo struct {
	businesses   map[uint]*models.Business
	customers    map[uint]models.Customer
	appointments map[uint]*models.Appointment

	availability []models.Availability
	booked       map[string]bool
	slotTaken    bool

	providerAps []models.Appointment
	customerAps []models.Appointment

	createErr error
	updateErr error

	creates []createCall
	updates []models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		businesses:   map[uint]*models.Business{},
		customers:    map[uint]models.Customer{},
		appointments: map[uint]*models.Appointment{},
		booked:       map[string]bool{},
	}
}

func (f *fakeRepo) addBusiness(id, providerID uint) *models.Business {
	biz := &models.Business{ID: id, ProviderID: providerID, Name: "Negócio"}
	f.businesses[id] = biz
	return biz
}

func (f *fakeRepo) addCustomer(id uint) {
	f.customers[id] = models.Customer{UserID: id}
}

func (f *fakeRepo) GetBusinessByID(ctx context.Context, id uint) (*models.Business, error) {
	if biz, ok := f.businesses[id]; ok {
		return biz, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeBusinessNotFound)
}

func (f *fakeRepo) GetCustomersByIDs(ctx context.Context, ids []uint) ([]models.Customer, error) {
	out := []models.Customer{}
	for _, id := range ids {
		if c, ok := f.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	customerIDs []uint,
) error {
	f.creates = append(f.creates, createCall{ap: ap, customerIDs: customerIDs})
	if f.createErr != nil {
		return f.createErr
	}

	f.nextID++
	ap.ID = f.nextID
	if biz, ok := f.businesses[ap.BusinessID]; ok {
		ap.Business = *biz
	}
	for _, id := range customerIDs {
		ap.Customers = append(ap.Customers, models.AppointmentCustomer{
			AppointmentID: ap.ID,
			CustomerID:    id,
		})
	}
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		return ap, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, *ap)
	return nil
}

func (f *fakeRepo) ListAppointmentsForProvider(
	ctx context.Context,
	providerID uint,
	filter domain.ListProviderFilter,
) ([]models.Appointment, error) {
	return f.providerAps, nil
}

func (f *fakeRepo) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {
	return f.customerAps, nil
}

func (f *fakeRepo) IsSlotAvailable(
	ctx context.Context,
	businessID uint,
	date string,
	timeOfDay string,
) (bool, error) {
	return !f.slotTaken, nil
}

func (f *fakeRepo) ListAvailabilityForBusiness(
	ctx context.Context,
	businessID uint,
) ([]models.Availability, error) {
	return f.availability, nil
}

func (f *fakeRepo) ListBookedTimes(
	ctx context.Context,
	businessID uint,
	date string,
) (map[string]bool, error) {
	return f.booked, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
